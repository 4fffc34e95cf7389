package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/model"
)

// Connect membuka koneksi Postgres dan mengembalikan handle-nya.
// Tidak ada var DB global: handle di-inject ke router/store supaya tiap
// test bisa pegang instance sendiri.
func Connect() (*gorm.DB, error) {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kursusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("⚠️ Gagal ambil pool DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&courseModel.CourseModel{},
		&courseModel.LessonModel{},
	)
}

// Seed mengisi katalog demo kalau tabel masih kosong.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&courseModel.CourseModel{}).Count(&count)
	if count > 0 {
		return
	}

	desc := "Dasar-dasar backend dengan Go: HTTP, database, testing."
	db.Create(&courseModel.CourseModel{
		CourseName:        "Go Basics",
		CourseDescription: &desc,
		CourseCategory:    courseModel.CategoryBackend,
		CourseStatus:      courseModel.StatusActive,
		Lessons: []courseModel.LessonModel{
			{LessonName: "Intro", LessonYoutubeURL: "abc12345678"},
			{LessonName: "Structs & Interfaces", LessonYoutubeURL: "def12345678"},
		},
	})
	db.Create(&courseModel.CourseModel{
		CourseName:     "React dari Nol",
		CourseCategory: courseModel.CategoryFrontend,
		CourseStatus:   courseModel.StatusActive,
		Lessons: []courseModel.LessonModel{
			{LessonName: "JSX", LessonYoutubeURL: "ghi12345678"},
		},
	})
	log.Println(">>> DB seeded with default courses")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
