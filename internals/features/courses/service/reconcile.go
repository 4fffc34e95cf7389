package service

import (
	"fmt"

	courseDTO "kursusku_backend/internals/features/courses/dto"
	courseModel "kursusku_backend/internals/features/courses/model"
	courseRepo "kursusku_backend/internals/features/courses/repository"
)

// reconcileCourse menggabungkan representasi parsial req ke course yang
// sudah tersimpan, lalu men-stage mutasinya ke tx (belum commit):
//
//  1. field skalar yang dikirim menimpa field course; yang tidak dikirim
//     dibiarkan (partial update, bukan replace penuh)
//  2. kalau req.Lessons dikirim: lesson existing dicocokkan per id —
//     yang tidak disebut dihapus, yang cocok di-update field-per-field,
//     entri tanpa id (atau id yang tidak dikenal) jadi insert baru
//
// id kiriman yang tidak cocok dengan lesson milik course ini tidak pernah
// jadi error: entri itu diperlakukan sebagai lesson baru (id kiriman
// diabaikan, storage kasih id sendiri).
func reconcileCourse(tx courseRepo.CourseTx, course *courseModel.CourseModel, req courseDTO.UpdateCourseRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("name must not be empty: %w", ErrValidation)
		}
		course.CourseName = *req.Name
	}
	if req.Description != nil {
		course.CourseDescription = req.Description
	}
	if req.Category != nil {
		category, err := courseModel.ParseCategory(*req.Category)
		if err != nil {
			return fmt.Errorf("%v: %w", err, ErrValidation)
		}
		course.CourseCategory = category
	}
	if req.Status != nil {
		status, err := courseModel.ParseStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%v: %w", err, ErrValidation)
		}
		course.CourseStatus = status
	}

	if req.Lessons != nil {
		if err := reconcileLessons(tx, course, req.Lessons); err != nil {
			return err
		}
	}

	return tx.SaveCourse(course)
}

func reconcileLessons(tx courseRepo.CourseTx, course *courseModel.CourseModel, inputs []courseDTO.LessonInput) error {
	submitted := make(map[int]bool, len(inputs))
	for _, in := range inputs {
		if in.ID != nil {
			submitted[*in.ID] = true
		}
	}

	// hapus yang tersimpan tapi tidak disebut di kiriman
	kept := make([]courseModel.LessonModel, 0, len(course.Lessons))
	for i := range course.Lessons {
		if submitted[course.Lessons[i].LessonID] {
			kept = append(kept, course.Lessons[i])
			continue
		}
		if err := tx.RemoveLesson(&course.Lessons[i]); err != nil {
			return err
		}
	}
	course.Lessons = kept

	existing := make(map[int]*courseModel.LessonModel, len(course.Lessons))
	for i := range course.Lessons {
		existing[course.Lessons[i].LessonID] = &course.Lessons[i]
	}

	// update yang cocok dulu; insert ditunda supaya append tidak
	// menggeser backing array yang masih dipegang map existing
	var inserts []courseDTO.LessonInput
	for _, in := range inputs {
		if in.ID != nil {
			if l, ok := existing[*in.ID]; ok {
				if in.Name != nil {
					if *in.Name == "" {
						return fmt.Errorf("lesson name must not be empty: %w", ErrValidation)
					}
					l.LessonName = *in.Name
				}
				if in.YoutubeURL != nil {
					if *in.YoutubeURL == "" {
						return fmt.Errorf("lesson youtubeUrl must not be empty: %w", ErrValidation)
					}
					l.LessonYoutubeURL = *in.YoutubeURL
				}
				if err := tx.SaveLesson(l); err != nil {
					return err
				}
				continue
			}
		}
		inserts = append(inserts, in)
	}

	// insert baru, urut sesuai kiriman
	for _, in := range inserts {
		if in.Name == nil || *in.Name == "" || in.YoutubeURL == nil || *in.YoutubeURL == "" {
			return fmt.Errorf("new lesson needs name and youtubeUrl: %w", ErrValidation)
		}
		l := courseModel.LessonModel{
			LessonName:       *in.Name,
			LessonYoutubeURL: *in.YoutubeURL,
			LessonCourseID:   course.CourseID,
		}
		if err := tx.AddLesson(&l); err != nil {
			return err
		}
		course.Lessons = append(course.Lessons, l)
	}

	return nil
}
