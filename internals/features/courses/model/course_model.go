package model

import (
	"time"
)

// NOTE:
// - course_description: nullable → pakai *string
// - category/status: disimpan sebagai nama simbolik (varchar), bukan enum DB,
//   supaya migrasi gampang; parsing ketat ada di ParseCategory/ParseStatus
// - lessons: relasi satu-ke-banyak, hapus course = hapus semua lesson (cascade)
type CourseModel struct {
	CourseID          int      `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName        string   `gorm:"column:course_name;type:varchar(100);not null" json:"course_name"`
	CourseDescription *string  `gorm:"column:course_description;type:text" json:"course_description,omitempty"`
	CourseCategory    Category `gorm:"column:course_category;type:varchar(20);not null" json:"course_category"`
	CourseStatus      Status   `gorm:"column:course_status;type:varchar(20);not null;default:ACTIVE" json:"course_status"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`

	Lessons []LessonModel `gorm:"foreignKey:LessonCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"lessons"`
}

func (CourseModel) TableName() string { return "courses" }
