package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "kursusku_backend/internals/features/courses/model"
)

type gormCourseStore struct {
	db *gorm.DB
}

// NewCourseStore: store berbasis GORM. DB di-inject dari luar (tidak ada
// handle global), tiap request ambil tx sendiri lewat Begin.
func NewCourseStore(db *gorm.DB) CourseStore {
	return &gormCourseStore{db: db}
}

func (s *gormCourseStore) Begin(ctx context.Context) (CourseTx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, tx.Error)
	}
	return &gormCourseTx{tx: tx}, nil
}

type gormCourseTx struct {
	tx *gorm.DB
}

// urutan insert lesson = urutan lesson_id
func preloadLessons(db *gorm.DB) *gorm.DB {
	return db.Order("lesson_id ASC")
}

func (t *gormCourseTx) FindCourseByID(id int) (*courseModel.CourseModel, error) {
	var m courseModel.CourseModel
	err := t.tx.
		Preload("Lessons", preloadLessons).
		First(&m, "course_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &m, nil
}

func (t *gormCourseTx) ListCourses() ([]courseModel.CourseModel, error) {
	var rows []courseModel.CourseModel
	err := t.tx.
		Preload("Lessons", preloadLessons).
		Order("course_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rows, nil
}

func (t *gormCourseTx) ListCoursesPage(page, perPage int) ([]courseModel.CourseModel, int64, error) {
	var total int64
	if err := t.tx.Model(&courseModel.CourseModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var rows []courseModel.CourseModel
	err := t.tx.
		Preload("Lessons", preloadLessons).
		Order("course_id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rows, total, nil
}

func (t *gormCourseTx) AddCourse(c *courseModel.CourseModel) error {
	// Create ikut meng-insert Lessons yang menempel + mengisi FK-nya
	if err := t.tx.Create(c).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) SaveCourse(c *courseModel.CourseModel) error {
	// lesson di-stage terpisah lewat Add/Save/RemoveLesson
	if err := t.tx.Omit(clause.Associations).Save(c).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) RemoveCourse(c *courseModel.CourseModel) error {
	// cascade eksplisit: anak dulu, lalu induk, satu transaksi
	if err := t.tx.
		Where("lesson_course_id = ?", c.CourseID).
		Delete(&courseModel.LessonModel{}).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := t.tx.Delete(c).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) AddLesson(l *courseModel.LessonModel) error {
	if err := t.tx.Create(l).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) SaveLesson(l *courseModel.LessonModel) error {
	if err := t.tx.Save(l).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) RemoveLesson(l *courseModel.LessonModel) error {
	if err := t.tx.Delete(l).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) Commit() error {
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (t *gormCourseTx) Rollback() error {
	err := t.tx.Rollback().Error
	// rollback setelah commit bukan masalah (jalur defer)
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
