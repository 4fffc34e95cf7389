package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	courseDTO "kursusku_backend/internals/features/courses/dto"
	courseRepo "kursusku_backend/internals/features/courses/repository"
	courseService "kursusku_backend/internals/features/courses/service"
	helper "kursusku_backend/internals/helpers"
)

// CourseService: kontrak yang dibutuhkan controller; dipisah interface
// supaya handler bisa diuji dengan service palsu.
type CourseService interface {
	ListAll(ctx context.Context) ([]courseDTO.CourseResponse, error)
	ListPaged(ctx context.Context, page, perPage int) (*courseDTO.CoursePageResponse, error)
	GetByID(ctx context.Context, id int) (*courseDTO.CourseResponse, error)
	Create(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error)
	Update(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error)
	DeleteByID(ctx context.Context, id int) error
}

type CourseController struct {
	Service CourseService
}

func NewCourseController(svc CourseService) *CourseController {
	return &CourseController{Service: svc}
}

// GET /api/courses
func (h *CourseController) GetCourses(c *fiber.Ctx) error {
	courses, err := h.Service.ListAll(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, courses)
}

// GET /api/courses/paginated?page=&per_page=
func (h *CourseController) GetCoursesPaginated(c *fiber.Ctx) error {
	p, err := helper.ParsePageQuery(c, helper.DefaultPageOpts)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	page, err := h.Service.ListPaged(c.UserContext(), p.Page, p.PerPage)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, page)
}

// GET /api/courses/:id
func (h *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	course, err := h.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, course)
}

// POST /api/courses
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, course)
}

// PUT /api/courses/:id
func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := h.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, course)
}

// DELETE /api/courses/:id
func (h *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Service.DeleteByID(c.UserContext(), id); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonMessage(c, "course deleted")
}

func parseID(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid course id")
	}
	return id, nil
}

// writeServiceError: taksonomi service/repo → status HTTP.
// NotFound = 404, sisanya (validasi, pagination, persistence) = 400.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, courseRepo.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, courseService.ErrValidation),
		errors.Is(err, courseService.ErrInvalidRequest),
		errors.Is(err, courseRepo.ErrPersistence):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
