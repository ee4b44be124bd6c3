package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "edulink_backend/internals/features/school/lessons/controller"
)

func LessonRoutes(staff fiber.Router, db *gorm.DB) {
	h := lessonController.NewLessonController(db, validator.New())

	grp := staff.Group("/lessons")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}

// PlannerRoutes registers POST /generate-lesson on the authenticated api
// group, keeping the historical path outside the staff prefix.
func PlannerRoutes(api fiber.Router, db *gorm.DB) {
	h := lessonController.NewLessonController(db, validator.New())
	api.Post("/generate-lesson", h.GenerateLesson)
}
