package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	teacherController "edulink_backend/internals/features/users/teachers/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

// TeacherAdminRoutes: teacher management is admin-only.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := teacherController.NewTeacherController(db, validator.New())

	grp := admin.Group("/teachers",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("teacher management"), constants.AdminOnly...),
	)
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
