package repository

import (
	"context"
	"errors"

	courseModel "kursusku_backend/internals/features/courses/model"
)

var (
	// ErrNotFound: id tidak punya baris di storage.
	ErrNotFound = errors.New("course not found")
	// ErrPersistence: commit gagal (constraint / koneksi). Semua perubahan
	// yang sudah di-stage dibatalkan, tidak ada efek parsial.
	ErrPersistence = errors.New("persistence failure")
)

// CourseStore membuka unit of work baru per request. Implementasi GORM ada
// di course_gorm.go; service hanya bergantung pada interface ini supaya
// engine rekonsiliasi bisa diuji tanpa database.
type CourseStore interface {
	Begin(ctx context.Context) (CourseTx, error)
}

// CourseTx adalah unit of work: semua mutasi di-stage dulu, baru durable
// saat Commit. Rollback membuang semua yang pending. Setiap pemanggil wajib
// menutup tx di semua jalur keluar (commit atau rollback).
//
// SaveCourse/SaveLesson tidak ada di kontrak asalnya (ORM sumber melacak
// dirty object otomatis saat commit); di Go penulisan ulang field harus
// eksplisit, jadi dua operasi ini ikut jadi bagian kontrak.
type CourseTx interface {
	FindCourseByID(id int) (*courseModel.CourseModel, error)
	ListCourses() ([]courseModel.CourseModel, error)
	ListCoursesPage(page, perPage int) ([]courseModel.CourseModel, int64, error)

	AddCourse(c *courseModel.CourseModel) error
	SaveCourse(c *courseModel.CourseModel) error
	RemoveCourse(c *courseModel.CourseModel) error

	AddLesson(l *courseModel.LessonModel) error
	SaveLesson(l *courseModel.LessonModel) error
	RemoveLesson(l *courseModel.LessonModel) error

	Commit() error
	Rollback() error
}
