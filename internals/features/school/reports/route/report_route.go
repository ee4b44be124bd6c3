package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "edulink_backend/internals/features/school/reports/controller"
)

func ReportRoutes(staff fiber.Router, db *gorm.DB) {
	h := reportController.NewReportController(db)

	grp := staff.Group("/reports")
	{
		grp.Get("/overview", h.Overview)
		grp.Get("/chapter-performance", h.ChapterPerformance)
	}
}
