package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

var DefaultPageOpts = PageOptions{DefaultPerPage: 10, MaxPerPage: 100}

type PageParams struct {
	Page    int
	PerPage int
}

// ParsePageQuery: baca ?page=&per_page= dari query (1-based). Param yang
// tidak dikirim pakai default; yang dikirim tapi bukan angka positif =
// error (biar jadi 400, bukan dikoreksi diam-diam). per_page di-cap di
// MaxPerPage.
func ParsePageQuery(c *fiber.Ctx, opt PageOptions) (PageParams, error) {
	p := PageParams{Page: DefaultPage, PerPage: opt.DefaultPerPage}

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid page %q", raw)
		}
		p.Page = n
	}
	if raw := strings.TrimSpace(c.Query("per_page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid per_page %q", raw)
		}
		p.PerPage = n
	}
	if p.PerPage > opt.MaxPerPage {
		p.PerPage = opt.MaxPerPage
	}
	return p, nil
}
