package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "edulink_backend/internals/features/school/questionbank/controller"
	"edulink_backend/internals/helpers/countcache"
)

// one process-wide cache; the counter TTLs outlive a single request
var questionCounts = countcache.New()

func QuestionBankRoutes(staff fiber.Router, db *gorm.DB) {
	h := questionController.NewQuestionController(db, questionCounts)

	grp := staff.Group("/question-bank")
	{
		grp.Get("/", h.List)
		grp.Get("/counts", h.GetCounts)
	}
}
