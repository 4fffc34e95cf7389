package model

import (
	"time"
)

// NOTE:
// - lesson_youtube_url: varian longgar (string umum, max 255) — skema asli
//   pakai varchar(11) untuk video id, tapi klien tidak pernah memaksa 11 char
// - lesson_course_id: NOT NULL, lesson tidak pernah hidup tanpa course
type LessonModel struct {
	LessonID         int    `gorm:"column:lesson_id;primaryKey;autoIncrement" json:"lesson_id"`
	LessonName       string `gorm:"column:lesson_name;type:varchar(100);not null" json:"lesson_name"`
	LessonYoutubeURL string `gorm:"column:lesson_youtube_url;type:varchar(255);not null" json:"lesson_youtube_url"`
	LessonCourseID   int    `gorm:"column:lesson_course_id;not null;index" json:"lesson_course_id"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string { return "lessons" }
