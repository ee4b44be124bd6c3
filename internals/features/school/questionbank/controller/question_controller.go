package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionDTO "edulink_backend/internals/features/school/questionbank/dto"
	questionModel "edulink_backend/internals/features/school/questionbank/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/countcache"
	"edulink_backend/internals/helpers/resolve"
)

// QuestionController serves the read-only question bank. Counts go through
// the TTL cache so the three badge numbers do not hit the DB on every page.
type QuestionController struct {
	DB       *gorm.DB
	Resolver *resolve.Resolver
	Counts   *countcache.Cache
}

func NewQuestionController(db *gorm.DB, counts *countcache.Cache) *QuestionController {
	return &QuestionController{DB: db, Resolver: resolve.NewResolver(db), Counts: counts}
}

func (h *QuestionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&questionModel.QuestionModel{}).
		Where("question_school_id = ?", schoolID)
	if lessonID := c.Query("lesson_id"); lessonID != "" {
		if _, perr := uuid.Parse(lessonID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson_id")
		}
		q = q.Where("question_lesson_id = ?", lessonID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var rows []questionModel.QuestionModel
	if err := q.Order("question_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	refs := make([]resolve.Ref, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, resolve.Ref{Kind: resolve.KindLesson, ID: r.QuestionLessonID})
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]questionDTO.QuestionResponse, 0, len(rows))
	for _, r := range rows {
		resp := questionDTO.NewQuestionResponse(r)
		resp.LessonName = resolve.Name(resolved, resolve.KindLesson, &r.QuestionLessonID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetCounts returns the three bank counters, each with its own TTL. A cache
// miss triggers one COUNT query for that key only.
func (h *QuestionController) GetCounts(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	countWhere := func(cond string, args ...any) func() (int64, error) {
		return func() (int64, error) {
			var n int64
			err := h.DB.Model(&questionModel.QuestionModel{}).
				Where(cond, args...).Count(&n).Error
			return n, err
		}
	}

	// keys are scoped per school so tenants never see each other's counters
	scope := ":" + schoolID.String()

	schoolCount, err := h.Counts.GetOrLoad(
		countcache.KeySchoolQuestionCount+scope,
		countcache.TTLSchoolQuestionCount,
		countWhere("question_school_id = ?", schoolID),
	)
	if err != nil {
		log.Println("[ERROR] school question count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	sharedCount, err := h.Counts.GetOrLoad(
		countcache.KeySharedBankCount+scope,
		countcache.TTLSharedBankCount,
		countWhere("question_school_id = ? AND question_is_shared = ?", schoolID, true),
	)
	if err != nil {
		log.Println("[ERROR] shared bank count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	pastYearCount, err := h.Counts.GetOrLoad(
		countcache.KeyPastYearQuestionCount+scope,
		countcache.TTLPastYearQuestionCount,
		countWhere("question_school_id = ? AND question_is_past_year = ?", schoolID, true),
	)
	if err != nil {
		log.Println("[ERROR] past year question count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	return helper.JsonOK(c, "OK", questionDTO.QuestionCountsResponse{
		SchoolQuestionCount:   schoolCount,
		SharedBankCount:       sharedCount,
		PastYearQuestionCount: pastYearCount,
	})
}
