package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	contentController "edulink_backend/internals/features/school/contents/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func ContentRoutes(staff fiber.Router, teacher fiber.Router, db *gorm.DB) {
	h := contentController.NewContentController(db, validator.New())

	grp := staff.Group("/contents")
	{
		grp.Get("/", h.List)
	}

	tch := teacher.Group("/contents",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("content management"), constants.TeacherAndAbove...),
	)
	{
		tch.Post("/", h.Create)
		tch.Patch("/:id", h.Update)
		tch.Delete("/:id", h.Delete)
	}
}
