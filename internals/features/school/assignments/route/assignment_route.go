package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	assignmentController "edulink_backend/internals/features/school/assignments/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func AssignmentRoutes(staff fiber.Router, teacher fiber.Router, db *gorm.DB) {
	h := assignmentController.NewAssignmentController(db, validator.New())

	grp := staff.Group("/assignments")
	{
		grp.Get("/", h.List)
		grp.Get("/:id/submissions", h.ListSubmissions)
	}

	// assignments are authored and graded by teachers
	tch := teacher.Group("/assignments",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("assignment management"), constants.TeacherAndAbove...),
	)
	{
		tch.Post("/", h.Create)
		tch.Patch("/:id", h.Update)
		tch.Delete("/:id", h.Delete)
		tch.Patch("/submissions/:submission_id/grade", h.GradeSubmission)
	}
}
