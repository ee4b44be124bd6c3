package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	diaryController "edulink_backend/internals/features/school/diary/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func DiaryRoutes(staff fiber.Router, teacher fiber.Router, db *gorm.DB) {
	hw := diaryController.NewHomeworkController(db, validator.New())
	rm := diaryController.NewRemarkController(db, validator.New())

	grp := staff.Group("/diary")
	{
		grp.Get("/homeworks", hw.List)
		grp.Get("/remarks", rm.List)
	}

	tch := teacher.Group("/diary",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("diary management"), constants.TeacherAndAbove...),
	)
	{
		tch.Post("/homeworks", hw.Create)
		tch.Patch("/homeworks/:id", hw.Update)
		tch.Delete("/homeworks/:id", hw.Delete)

		tch.Post("/remarks", rm.Create)
		tch.Patch("/remarks/:id", rm.Update)
		tch.Delete("/remarks/:id", rm.Delete)
	}
}
