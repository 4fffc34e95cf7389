package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "kursusku_backend/internals/features/courses/controller"
	courseRepo "kursusku_backend/internals/features/courses/repository"
	courseService "kursusku_backend/internals/features/courses/service"
)

// CourseRoutes merakit store → service → controller lalu daftarkan rute.
// /paginated didaftarkan sebelum /:id supaya tidak ketangkap param.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	store := courseRepo.NewCourseStore(db)
	svc := courseService.NewCourseService(store)
	ctl := courseController.NewCourseController(svc)

	r := api.Group("/courses")
	r.Get("/", ctl.GetCourses)
	r.Get("/paginated", ctl.GetCoursesPaginated)
	r.Get("/:id", ctl.GetCourse)
	r.Post("/", ctl.CreateCourse)
	r.Put("/:id", ctl.UpdateCourse)
	r.Delete("/:id", ctl.DeleteCourse)
}
