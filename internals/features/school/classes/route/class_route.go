package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	classController "edulink_backend/internals/features/school/classes/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func ClassRoutes(staff fiber.Router, admin fiber.Router, db *gorm.DB) {
	h := classController.NewClassController(db, validator.New())

	// staff (teacher/admin): read
	grp := staff.Group("/classes")
	{
		grp.Get("/", h.List)
	}

	// admin: write
	adm := admin.Group("/classes",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.AdminOnly...),
	)
	{
		adm.Post("/", h.Create)
		adm.Patch("/:id", h.Update)
		adm.Delete("/:id", h.Delete)
	}
}
