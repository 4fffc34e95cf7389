package dto

import (
	"strings"
	"time"

	courseModel "kursusku_backend/internals/features/courses/model"
)

/* =========================================================
   CREATE
   POST /api/courses
   ========================================================= */

type CreateLessonRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	YoutubeURL string `json:"youtubeUrl" validate:"required,min=1,max=255"`
}

type CreateCourseRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`

	// Category wajib; Status boleh kosong → default ACTIVE di service
	Category string  `json:"category" validate:"required"`
	Status   *string `json:"status"`

	Lessons []CreateLessonRequest `json:"lessons" validate:"omitempty,dive"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
	for i := range r.Lessons {
		r.Lessons[i].Name = strings.TrimSpace(r.Lessons[i].Name)
		r.Lessons[i].YoutubeURL = strings.TrimSpace(r.Lessons[i].YoutubeURL)
	}
}

/* =========================================================
   UPDATE (partial)
   PUT /api/courses/:id
   - field pointer nil = tidak dikirim = tidak diubah
   - Lessons nil = tidak dikirim → koleksi lesson tidak disentuh
   - Lessons [] = dikirim kosong → semua lesson dihapus
   ========================================================= */

type LessonInput struct {
	ID         *int    `json:"id"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	YoutubeURL *string `json:"youtubeUrl" validate:"omitempty,min=1,max=255"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`

	Lessons []LessonInput `json:"lessons" validate:"omitempty,dive"`
}

func (r *UpdateCourseRequest) Normalize() {
	trimPtr := func(pp **string) {
		if *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		*pp = &v
	}
	trimPtr(&r.Name)
	trimPtr(&r.Description)
	trimPtr(&r.Category)
	trimPtr(&r.Status)
	for i := range r.Lessons {
		trimPtr(&r.Lessons[i].Name)
		trimPtr(&r.Lessons[i].YoutubeURL)
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LessonResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	YoutubeURL string    `json:"youtubeUrl"`
	CourseID   int       `json:"courseId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CourseResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Category    string           `json:"category"` // nilai tampilan ("Backend")
	Status      string           `json:"status"`   // nilai tampilan ("Active")
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Lessons     []LessonResponse `json:"lessons"`
}

// Envelope untuk GET /api/courses/paginated
type CoursePageResponse struct {
	PageIndex       int              `json:"pageIndex"`
	PageSize        int              `json:"pageSize"`
	TotalCount      int64            `json:"totalCount"`
	TotalPages      int              `json:"totalPages"`
	CanPreviousPage bool             `json:"canPreviousPage"`
	CanNextPage     bool             `json:"canNextPage"`
	Data            []CourseResponse `json:"data"`
}

func FromLessonModel(m courseModel.LessonModel) LessonResponse {
	return LessonResponse{
		ID:         m.LessonID,
		Name:       m.LessonName,
		YoutubeURL: m.LessonYoutubeURL,
		CourseID:   m.LessonCourseID,
		CreatedAt:  m.LessonCreatedAt,
		UpdatedAt:  m.LessonUpdatedAt,
	}
}

func FromCourseModel(m courseModel.CourseModel) CourseResponse {
	lessons := make([]LessonResponse, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		lessons = append(lessons, FromLessonModel(l))
	}
	return CourseResponse{
		ID:          m.CourseID,
		Name:        m.CourseName,
		Description: m.CourseDescription,
		Category:    m.CourseCategory.Display(),
		Status:      m.CourseStatus.Display(),
		CreatedAt:   m.CourseCreatedAt,
		UpdatedAt:   m.CourseUpdatedAt,
		Lessons:     lessons,
	}
}

func FromCourseModels(ms []courseModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCourseModel(m))
	}
	return out
}
