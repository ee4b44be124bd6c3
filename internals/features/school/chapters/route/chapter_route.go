package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	chapterController "edulink_backend/internals/features/school/chapters/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func ChapterRoutes(staff fiber.Router, admin fiber.Router, db *gorm.DB) {
	h := chapterController.NewChapterController(db, validator.New())

	grp := staff.Group("/chapters")
	{
		grp.Get("/", h.List)
	}

	adm := admin.Group("/chapters",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("chapter management"), constants.AdminOnly...),
	)
	{
		adm.Post("/", h.Create)
		adm.Patch("/:id", h.Update)
		adm.Delete("/:id", h.Delete)
	}
}
