package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	courseDTO "kursusku_backend/internals/features/courses/dto"
	courseRepo "kursusku_backend/internals/features/courses/repository"
	courseService "kursusku_backend/internals/features/courses/service"
	helper "kursusku_backend/internals/helpers"
)

/* =========================================================
   stub service — function fields, gaya stub repo di test usecase
   ========================================================= */

type stubService struct {
	listAllFn   func(ctx context.Context) ([]courseDTO.CourseResponse, error)
	listPagedFn func(ctx context.Context, page, perPage int) (*courseDTO.CoursePageResponse, error)
	getFn       func(ctx context.Context, id int) (*courseDTO.CourseResponse, error)
	createFn    func(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error)
	updateFn    func(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error)
	deleteFn    func(ctx context.Context, id int) error
}

func (s *stubService) ListAll(ctx context.Context) ([]courseDTO.CourseResponse, error) {
	return s.listAllFn(ctx)
}
func (s *stubService) ListPaged(ctx context.Context, page, perPage int) (*courseDTO.CoursePageResponse, error) {
	return s.listPagedFn(ctx, page, perPage)
}
func (s *stubService) GetByID(ctx context.Context, id int) (*courseDTO.CourseResponse, error) {
	return s.getFn(ctx, id)
}
func (s *stubService) Create(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error) {
	return s.createFn(ctx, req)
}
func (s *stubService) Update(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error) {
	return s.updateFn(ctx, id, req)
}
func (s *stubService) DeleteByID(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func newTestApp(svc CourseService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctl := NewCourseController(svc)

	r := app.Group("/api").Group("/courses")
	r.Get("/", ctl.GetCourses)
	r.Get("/paginated", ctl.GetCoursesPaginated)
	r.Get("/:id", ctl.GetCourse)
	r.Post("/", ctl.CreateCourse)
	r.Put("/:id", ctl.UpdateCourse)
	r.Delete("/:id", ctl.DeleteCourse)
	return app
}

func decodeBody(t *testing.T, body io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

/* =========================================================
   LIST
   ========================================================= */

func TestGetCoursesReturnsArray(t *testing.T) {
	app := newTestApp(&stubService{
		listAllFn: func(ctx context.Context) ([]courseDTO.CourseResponse, error) {
			return []courseDTO.CourseResponse{
				{ID: 1, Name: "Go Basics", Category: "Backend", Status: "Active",
					Lessons: []courseDTO.LessonResponse{}},
			}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got []courseDTO.CourseResponse
	decodeBody(t, resp.Body, &got)
	if len(got) != 1 || got[0].Name != "Go Basics" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestGetCoursesPaginatedForwardsParams(t *testing.T) {
	var gotPage, gotPerPage int
	app := newTestApp(&stubService{
		listPagedFn: func(ctx context.Context, page, perPage int) (*courseDTO.CoursePageResponse, error) {
			gotPage, gotPerPage = page, perPage
			return &courseDTO.CoursePageResponse{
				PageIndex: page, PageSize: perPage, TotalCount: 0, TotalPages: 0,
				Data: []courseDTO.CourseResponse{},
			}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/paginated?page=2&per_page=5", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if gotPage != 2 || gotPerPage != 5 {
		t.Fatalf("params not forwarded: page=%d per_page=%d", gotPage, gotPerPage)
	}
}

func TestGetCoursesPaginatedBadParam(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/paginated?per_page=abc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if body["error"] == "" {
		t.Fatal("expected {\"error\": ...} body")
	}
}

/* =========================================================
   GET BY ID
   ========================================================= */

func TestGetCourseNotFound(t *testing.T) {
	app := newTestApp(&stubService{
		getFn: func(ctx context.Context, id int) (*courseDTO.CourseResponse, error) {
			return nil, fmt.Errorf("course with id %d: %w", id, courseRepo.ErrNotFound)
		},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/9", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if !strings.Contains(body["error"], "9") {
		t.Fatalf("error must identify the id, got %q", body["error"])
	}
}

func TestGetCourseBadID(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/abc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

/* =========================================================
   CREATE
   ========================================================= */

func TestCreateCourseCreated(t *testing.T) {
	var captured courseDTO.CreateCourseRequest
	app := newTestApp(&stubService{
		createFn: func(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error) {
			captured = req
			return &courseDTO.CourseResponse{ID: 1, Name: req.Name, Category: "Backend", Status: "Active",
				Lessons: []courseDTO.LessonResponse{{ID: 1, Name: "Intro", YoutubeURL: "abc12345678", CourseID: 1}}}, nil
		},
	})

	payload := `{"name":"Go Basics","category":"BACKEND","lessons":[{"name":"Intro","youtubeUrl":"abc12345678"}]}`
	req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if captured.Name != "Go Basics" || captured.Category != "BACKEND" {
		t.Fatalf("request not forwarded: %+v", captured)
	}
	if len(captured.Lessons) != 1 || captured.Lessons[0].YoutubeURL != "abc12345678" {
		t.Fatalf("lessons not forwarded: %+v", captured.Lessons)
	}

	var got courseDTO.CourseResponse
	decodeBody(t, resp.Body, &got)
	if got.ID != 1 || len(got.Lessons) != 1 || got.Lessons[0].ID == 0 {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestCreateCourseMissingRequiredFields(t *testing.T) {
	called := false
	app := newTestApp(&stubService{
		createFn: func(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error) {
			called = true
			return nil, nil
		},
	})

	req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if called {
		t.Fatal("service must not be called when validation fails")
	}
}

func TestCreateCourseMalformedJSON(t *testing.T) {
	app := newTestApp(&stubService{})

	req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

/* =========================================================
   UPDATE / DELETE
   ========================================================= */

func TestUpdateCourseValidationError(t *testing.T) {
	app := newTestApp(&stubService{
		updateFn: func(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error) {
			return nil, fmt.Errorf("unknown category: %w", courseService.ErrValidation)
		},
	})

	req := httptest.NewRequest("PUT", "/api/courses/1", strings.NewReader(`{"category":"MOBILE"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateCourseOK(t *testing.T) {
	var capturedID int
	var captured courseDTO.UpdateCourseRequest
	app := newTestApp(&stubService{
		updateFn: func(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error) {
			capturedID, captured = id, req
			return &courseDTO.CourseResponse{ID: id, Name: "Go Advanced", Category: "Backend", Status: "Active",
				Lessons: []courseDTO.LessonResponse{}}, nil
		},
	})

	req := httptest.NewRequest("PUT", "/api/courses/3",
		strings.NewReader(`{"name":"Go Advanced","lessons":[{"id":7,"youtubeUrl":"newurl"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if capturedID != 3 {
		t.Fatalf("id not forwarded: %d", capturedID)
	}
	if captured.Name == nil || *captured.Name != "Go Advanced" {
		t.Fatalf("name not forwarded: %+v", captured.Name)
	}
	if len(captured.Lessons) != 1 || captured.Lessons[0].ID == nil || *captured.Lessons[0].ID != 7 {
		t.Fatalf("lesson input not forwarded: %+v", captured.Lessons)
	}
	if captured.Lessons[0].Name != nil {
		t.Fatal("absent lesson name must stay nil (partial semantics)")
	}
}

func TestDeleteCourseMessage(t *testing.T) {
	app := newTestApp(&stubService{
		deleteFn: func(ctx context.Context, id int) error { return nil },
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/courses/1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if body["message"] == "" {
		t.Fatalf("expected {\"message\": ...}, got %v", body)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	app := newTestApp(&stubService{
		deleteFn: func(ctx context.Context, id int) error {
			return fmt.Errorf("course with id %d: %w", id, courseRepo.ErrNotFound)
		},
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/courses/5", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
