package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contentDTO "edulink_backend/internals/features/school/contents/dto"
	contentModel "edulink_backend/internals/features/school/contents/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	helperOSS "edulink_backend/internals/helpers/oss"
	"edulink_backend/internals/helpers/resolve"
)

type ContentController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewContentController(db *gorm.DB, v interface{ Struct(any) error }) *ContentController {
	return &ContentController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

func (h *ContentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req contentDTO.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	classID, _ := uuid.Parse(req.ClassID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	var url string
	if fh, ferr := c.FormFile("file"); ferr == nil && fh != nil {
		svc, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "File storage is unavailable")
		}

		// videos get the large limit and their own storage prefix
		category := "notes"
		maxSize := helperOSS.MaxAttachmentSize
		if req.IsVideo {
			category = "videos"
			maxSize = helperOSS.MaxVideoSize
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 120*time.Second)
		defer cancel()
		uploaded, _, uerr := svc.UploadAttachment(ctx, category, schoolID, fh, maxSize)
		if uerr != nil {
			log.Println("[ERROR] content upload:", uerr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to upload file")
		}
		url = uploaded
	} else if req.URL != nil {
		url = *req.URL
	} else {
		return helper.JsonError(c, fiber.StatusBadRequest, "Either a file or a url is required")
	}

	ent := contentModel.ContentModel{
		ContentSchoolID:    schoolID,
		ContentClassID:     classID,
		ContentSubjectID:   subjectID,
		ContentTitle:       req.Title,
		ContentDescription: req.Description,
		ContentURL:         url,
		ContentIsVideo:     req.IsVideo,
		ContentCreatedBy:   &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save content")
	}
	return helper.JsonCreated(c, "Content created", contentDTO.NewContentResponse(ent))
}

// List serves both the notes page and the videos page through ?video=.
func (h *ContentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&contentModel.ContentModel{}).
		Where("content_school_id = ?", schoolID)
	switch c.Query("video") {
	case "":
	case "true", "1":
		q = q.Where("content_is_video = ?", true)
	case "false", "0":
		q = q.Where("content_is_video = ?", false)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video filter")
	}
	if classID := c.Query("class_id"); classID != "" {
		if _, perr := uuid.Parse(classID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("content_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contents")
	}

	var rows []contentModel.ContentModel
	if err := q.Order("content_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contents")
	}

	refs := make([]resolve.Ref, 0, len(rows)*2)
	for _, r := range rows {
		refs = append(refs,
			resolve.Ref{Kind: resolve.KindClass, ID: r.ContentClassID},
			resolve.Ref{Kind: resolve.KindSubject, ID: r.ContentSubjectID},
		)
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]contentDTO.ContentResponse, 0, len(rows))
	for _, r := range rows {
		resp := contentDTO.NewContentResponse(r)
		resp.ClassName = resolve.Name(resolved, resolve.KindClass, &r.ContentClassID)
		resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &r.ContentSubjectID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *ContentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var req contentDTO.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row contentModel.ContentModel
	dberr := h.DB.Where("content_id = ? AND content_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load content")
	}

	if req.Title != nil {
		row.ContentTitle = *req.Title
	}
	if req.Description != nil {
		row.ContentDescription = req.Description
	}
	if req.URL != nil {
		row.ContentURL = *req.URL
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update content")
	}
	return helper.JsonUpdated(c, "Content updated", contentDTO.NewContentResponse(row))
}

func (h *ContentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	res := h.DB.Where("content_id = ? AND content_school_id = ?", id, schoolID).
		Delete(&contentModel.ContentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete content")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	return helper.JsonDeleted(c, "Content deleted", fiber.Map{"content_id": id})
}
