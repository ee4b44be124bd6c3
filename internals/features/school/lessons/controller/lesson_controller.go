package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonDTO "edulink_backend/internals/features/school/lessons/dto"
	lessonModel "edulink_backend/internals/features/school/lessons/model"
	lessonService "edulink_backend/internals/features/school/lessons/service"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type LessonController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
	Planner   *lessonService.PlannerService
}

func NewLessonController(db *gorm.DB, v interface{ Struct(any) error }) *LessonController {
	return &LessonController{
		DB:        db,
		Validator: v,
		Resolver:  resolve.NewResolver(db),
		Planner:   lessonService.NewPlannerService(),
	}
}

func (h *LessonController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req lessonDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	subjectID, _ := uuid.Parse(req.SubjectID)
	chapterID, _ := uuid.Parse(req.ChapterID)

	// the chapter must exist in this school and belong to the given subject
	var exists int64
	if err := h.DB.Table("chapters").
		Where("chapter_id = ? AND chapter_school_id = ? AND chapter_subject_id = ? AND chapter_deleted_at IS NULL",
			chapterID, schoolID, subjectID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check chapter")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found for that subject")
	}

	ent := lessonModel.LessonModel{
		LessonSchoolID:    schoolID,
		LessonSubjectID:   subjectID,
		LessonChapterID:   chapterID,
		LessonName:        req.LessonName,
		LessonDescription: req.Description,
		LessonContent:     req.Content,
		LessonOrderIndex:  req.OrderIndex,
		LessonCreatedBy:   &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save lesson")
	}
	return helper.JsonCreated(c, "Lesson created", lessonDTO.NewLessonResponse(ent))
}

// List orders lessons inside each chapter by order index. ?chapter_id= and
// ?subject_id= narrow the scope.
func (h *LessonController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&lessonModel.LessonModel{}).
		Where("lesson_school_id = ?", schoolID)
	if chapterID := c.Query("chapter_id"); chapterID != "" {
		if _, perr := uuid.Parse(chapterID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter_id")
		}
		q = q.Where("lesson_chapter_id = ?", chapterID)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		if _, perr := uuid.Parse(subjectID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("lesson_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var rows []lessonModel.LessonModel
	if err := q.Order("lesson_chapter_id ASC, lesson_order_index ASC, lesson_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
	}

	refs := make([]resolve.Ref, 0, len(rows)*2)
	for _, r := range rows {
		refs = append(refs,
			resolve.Ref{Kind: resolve.KindSubject, ID: r.LessonSubjectID},
			resolve.Ref{Kind: resolve.KindChapter, ID: r.LessonChapterID},
		)
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]lessonDTO.LessonResponse, 0, len(rows))
	for _, r := range rows {
		resp := lessonDTO.NewLessonResponse(r)
		resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &r.LessonSubjectID)
		resp.ChapterName = resolve.Name(resolved, resolve.KindChapter, &r.LessonChapterID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *LessonController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var row lessonModel.LessonModel
	dberr := h.DB.Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	resolved := h.Resolver.ResolveAll(c.UserContext(), []resolve.Ref{
		{Kind: resolve.KindSubject, ID: row.LessonSubjectID},
		{Kind: resolve.KindChapter, ID: row.LessonChapterID},
	})
	resp := lessonDTO.NewLessonResponse(row)
	resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &row.LessonSubjectID)
	resp.ChapterName = resolve.Name(resolved, resolve.KindChapter, &row.LessonChapterID)
	return helper.JsonOK(c, "OK", resp)
}

func (h *LessonController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var req lessonDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row lessonModel.LessonModel
	dberr := h.DB.Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	if req.LessonName != nil {
		row.LessonName = *req.LessonName
	}
	if req.Description != nil {
		row.LessonDescription = req.Description
	}
	if req.Content != nil {
		row.LessonContent = req.Content
	}
	if req.OrderIndex != nil {
		row.LessonOrderIndex = *req.OrderIndex
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}
	return helper.JsonUpdated(c, "Lesson updated", lessonDTO.NewLessonResponse(row))
}

func (h *LessonController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	res := h.DB.Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).
		Delete(&lessonModel.LessonModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"lesson_id": id})
}

// GenerateLesson proxies the planner call. The endpoint shape is fixed:
// {prompt} in, {lessonPlan} out.
func (h *LessonController) GenerateLesson(c *fiber.Ctx) error {
	var req lessonDTO.GenerateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	plan, err := h.Planner.GenerateLessonPlan(c.UserContext(), req.Prompt)
	if err != nil {
		if errors.Is(err, lessonService.ErrPlannerUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Lesson planner is not configured")
		}
		log.Println("[ERROR] generate lesson:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to generate lesson plan")
	}
	return c.Status(fiber.StatusOK).JSON(lessonDTO.GenerateLessonResponse{LessonPlan: plan})
}
