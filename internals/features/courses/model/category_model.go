package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnumValue dikembalikan saat string enum tidak dikenal.
var ErrInvalidEnumValue = errors.New("invalid enum value")

/* =========================================================
   CATEGORY — disimpan pakai nama simbolik (BACKEND, ...)
   ========================================================= */

type Category string

const (
	CategoryBackend   Category = "BACKEND"
	CategoryFrontend  Category = "FRONTEND"
	CategoryFullstack Category = "FULLSTACK"
)

var categoryDisplay = map[Category]string{
	CategoryBackend:   "Backend",
	CategoryFrontend:  "Frontend",
	CategoryFullstack: "Fullstack",
}

// ParseCategory: parsing by-name, case-insensitive (input di-uppercase dulu).
// Nilai tak dikenal = error, bukan default diam-diam.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := categoryDisplay[c]; !ok {
		return "", fmt.Errorf("unknown category %q: %w", s, ErrInvalidEnumValue)
	}
	return c, nil
}

// Display: nilai tampilan untuk response JSON ("Backend", bukan "BACKEND").
func (c Category) Display() string { return categoryDisplay[c] }

/* =========================================================
   STATUS
   ========================================================= */

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

var statusDisplay = map[Status]string{
	StatusActive:   "Active",
	StatusInactive: "Inactive",
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusDisplay[st]; !ok {
		return "", fmt.Errorf("unknown status %q: %w", s, ErrInvalidEnumValue)
	}
	return st, nil
}

func (s Status) Display() string { return statusDisplay[s] }
