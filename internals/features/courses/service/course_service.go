package service

import (
	"context"
	"fmt"
	"math"

	courseDTO "kursusku_backend/internals/features/courses/dto"
	courseModel "kursusku_backend/internals/features/courses/model"
	courseRepo "kursusku_backend/internals/features/courses/repository"
)

// CourseService membungkus store + engine rekonsiliasi untuk lima operasi
// katalog. Store di-inject lewat konstruktor supaya engine bisa diuji
// dengan store palsu, tanpa database hidup.
type CourseService struct {
	store courseRepo.CourseStore
}

func NewCourseService(store courseRepo.CourseStore) *CourseService {
	return &CourseService{store: store}
}

// ListAll: semua course urut insert, lesson ikut dimuat.
func (s *CourseService) ListAll(ctx context.Context) ([]courseDTO.CourseResponse, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.ListCourses()
	if err != nil {
		return nil, err
	}
	return courseDTO.FromCourseModels(rows), nil
}

// ListPaged: halaman 1-based; page/perPage < 1 = ErrInvalidRequest.
// Halaman di luar jangkauan mengembalikan data kosong, totalCount tetap.
func (s *CourseService) ListPaged(ctx context.Context, page, perPage int) (*courseDTO.CoursePageResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d: %w", page, ErrInvalidRequest)
	}
	if perPage < 1 {
		return nil, fmt.Errorf("per_page must be >= 1, got %d: %w", perPage, ErrInvalidRequest)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, total, err := tx.ListCoursesPage(page, perPage)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return &courseDTO.CoursePageResponse{
		PageIndex:       page,
		PageSize:        perPage,
		TotalCount:      total,
		TotalPages:      totalPages,
		CanPreviousPage: page > 1,
		CanNextPage:     page < totalPages,
		Data:            courseDTO.FromCourseModels(rows),
	}, nil
}

func (s *CourseService) GetByID(ctx context.Context, id int) (*courseDTO.CourseResponse, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.FindCourseByID(id)
	if err != nil {
		return nil, fmt.Errorf("course with id %d: %w", id, err)
	}
	resp := courseDTO.FromCourseModel(*m)
	return &resp, nil
}

// Create: course baru + lesson bersarang (selalu insert, id dari storage).
// name & category wajib; status kosong = ACTIVE.
func (s *CourseService) Create(ctx context.Context, req courseDTO.CreateCourseRequest) (*courseDTO.CourseResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	category, err := courseModel.ParseCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	status := courseModel.StatusActive
	if req.Status != nil {
		status, err = courseModel.ParseStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	m := courseModel.CourseModel{
		CourseName:        req.Name,
		CourseDescription: req.Description,
		CourseCategory:    category,
		CourseStatus:      status,
	}
	for _, l := range req.Lessons {
		if l.Name == "" || l.YoutubeURL == "" {
			return nil, fmt.Errorf("lesson name and youtubeUrl are required: %w", ErrValidation)
		}
		m.Lessons = append(m.Lessons, courseModel.LessonModel{
			LessonName:       l.Name,
			LessonYoutubeURL: l.YoutubeURL,
		})
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.AddCourse(&m); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	resp := courseDTO.FromCourseModel(m)
	return &resp, nil
}

// Update: ambil course, jalankan rekonsiliasi, commit. Gagal commit =
// rollback + ErrPersistence; objek in-memory jangan dipakai lagi oleh caller.
func (s *CourseService) Update(ctx context.Context, id int, req courseDTO.UpdateCourseRequest) (*courseDTO.CourseResponse, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.FindCourseByID(id)
	if err != nil {
		return nil, fmt.Errorf("course with id %d: %w", id, err)
	}

	if err := reconcileCourse(tx, m, req); err != nil {
		return nil, fmt.Errorf("update course %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update course %d: %w", id, err)
	}

	resp := courseDTO.FromCourseModel(*m)
	return &resp, nil
}

// DeleteByID: hapus course + semua lesson-nya (cascade) dalam satu tx.
func (s *CourseService) DeleteByID(ctx context.Context, id int) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.FindCourseByID(id)
	if err != nil {
		return fmt.Errorf("course with id %d: %w", id, err)
	}
	if err := tx.RemoveCourse(m); err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}
	return nil
}
