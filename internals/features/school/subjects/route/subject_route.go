package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	subjectController "edulink_backend/internals/features/school/subjects/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func SubjectRoutes(staff fiber.Router, admin fiber.Router, db *gorm.DB) {
	h := subjectController.NewSubjectController(db, validator.New())

	grp := staff.Group("/subjects")
	{
		grp.Get("/", h.List)
	}

	adm := admin.Group("/subjects",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.AdminOnly...),
	)
	{
		adm.Post("/", h.Create)
		adm.Patch("/:id", h.Update)
		adm.Delete("/:id", h.Delete)
	}
}
