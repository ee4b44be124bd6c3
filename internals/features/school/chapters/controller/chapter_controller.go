package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterDTO "edulink_backend/internals/features/school/chapters/dto"
	chapterModel "edulink_backend/internals/features/school/chapters/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type ChapterController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewChapterController(db *gorm.DB, v interface{ Struct(any) error }) *ChapterController {
	return &ChapterController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

func (h *ChapterController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req chapterDTO.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	subjectID, _ := uuid.Parse(req.SubjectID)

	// the subject reference must point inside the caller's school
	var exists int64
	if err := h.DB.Table("subjects").
		Where("subject_id = ? AND subject_school_id = ? AND subject_deleted_at IS NULL", subjectID, schoolID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subject")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	ent := chapterModel.ChapterModel{
		ChapterSchoolID:    schoolID,
		ChapterSubjectID:   subjectID,
		ChapterName:        req.ChapterName,
		ChapterDescription: req.Description,
		ChapterOrderIndex:  req.OrderIndex,
		ChapterCreatedBy:   &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save chapter")
	}
	return helper.JsonCreated(c, "Chapter created", chapterDTO.NewChapterResponse(ent))
}

// List returns chapters grouped by subject: subject name ascending, then
// order index ascending inside each subject. ?subject_id= narrows to one.
func (h *ChapterController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&chapterModel.ChapterModel{}).
		Where("chapter_school_id = ?", schoolID)
	if subjectID := c.Query("subject_id"); subjectID != "" {
		if _, perr := uuid.Parse(subjectID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("chapter_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count chapters")
	}

	var rows []chapterModel.ChapterModel
	if err := q.
		Joins("LEFT JOIN subjects ON subjects.subject_id = chapters.chapter_subject_id").
		Order("subjects.subject_name ASC, chapters.chapter_order_index ASC, chapters.chapter_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapters")
	}

	refs := make([]resolve.Ref, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, resolve.Ref{Kind: resolve.KindSubject, ID: r.ChapterSubjectID})
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]chapterDTO.ChapterResponse, 0, len(rows))
	for _, r := range rows {
		resp := chapterDTO.NewChapterResponse(r)
		resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &r.ChapterSubjectID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *ChapterController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	var req chapterDTO.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row chapterModel.ChapterModel
	dberr := h.DB.Where("chapter_id = ? AND chapter_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapter")
	}

	if req.ChapterName != nil {
		row.ChapterName = *req.ChapterName
	}
	if req.Description != nil {
		row.ChapterDescription = req.Description
	}
	if req.OrderIndex != nil {
		row.ChapterOrderIndex = *req.OrderIndex
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update chapter")
	}
	return helper.JsonUpdated(c, "Chapter updated", chapterDTO.NewChapterResponse(row))
}

func (h *ChapterController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	res := h.DB.Where("chapter_id = ? AND chapter_school_id = ?", id, schoolID).
		Delete(&chapterModel.ChapterModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete chapter")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}
	return helper.JsonDeleted(c, "Chapter deleted", fiber.Map{"chapter_id": id})
}
