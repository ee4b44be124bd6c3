package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	diaryDTO "edulink_backend/internals/features/school/diary/dto"
	diaryModel "edulink_backend/internals/features/school/diary/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	helperOSS "edulink_backend/internals/helpers/oss"
	"edulink_backend/internals/helpers/resolve"
)

type HomeworkController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewHomeworkController(db *gorm.DB, v interface{ Struct(any) error }) *HomeworkController {
	return &HomeworkController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// uploadHomeworkAttachments pushes every multipart "attachments" file to OSS
// and returns the stored {url, name} list as jsonb.
func uploadHomeworkAttachments(c *fiber.Ctx, schoolID uuid.UUID) (datatypes.JSON, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["attachments"]
	if len(files) == 0 {
		return nil, nil
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 120*time.Second)
	defer cancel()

	out := make([]diaryDTO.Attachment, 0, len(files))
	for _, fh := range files {
		url, _, uerr := svc.UploadAttachment(ctx, "homeworks", schoolID, fh, helperOSS.MaxAttachmentSize)
		if uerr != nil {
			return nil, uerr
		}
		out = append(out, diaryDTO.Attachment{URL: url, Name: fh.Filename})
	}

	raw, err := sonic.Marshal(out)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (h *HomeworkController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req diaryDTO.CreateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due_date")
	}
	classID, _ := uuid.Parse(req.ClassID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	attachments, err := uploadHomeworkAttachments(c, schoolID)
	if err != nil {
		log.Println("[ERROR] homework attachments:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to upload attachments")
	}

	ent := diaryModel.HomeworkModel{
		HomeworkSchoolID:    schoolID,
		HomeworkClassID:     classID,
		HomeworkSubjectID:   subjectID,
		HomeworkTitle:       req.Title,
		HomeworkDescription: req.Description,
		HomeworkWorkToDo:    req.WorkToDo,
		HomeworkDueDate:     dueDate,
		HomeworkPriority:    req.Priority,
		HomeworkAttachments: attachments,
		HomeworkCreatedBy:   &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save homework")
	}
	return helper.JsonCreated(c, "Homework created", diaryDTO.NewHomeworkResponse(ent))
}

func (h *HomeworkController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&diaryModel.HomeworkModel{}).
		Where("homework_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		if _, perr := uuid.Parse(classID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("homework_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count homeworks")
	}

	var rows []diaryModel.HomeworkModel
	if err := q.Order("homework_due_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load homeworks")
	}

	refs := make([]resolve.Ref, 0, len(rows)*2)
	for _, r := range rows {
		refs = append(refs,
			resolve.Ref{Kind: resolve.KindClass, ID: r.HomeworkClassID},
			resolve.Ref{Kind: resolve.KindSubject, ID: r.HomeworkSubjectID},
		)
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]diaryDTO.HomeworkResponse, 0, len(rows))
	for _, r := range rows {
		resp := diaryDTO.NewHomeworkResponse(r)
		resp.ClassName = resolve.Name(resolved, resolve.KindClass, &r.HomeworkClassID)
		resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &r.HomeworkSubjectID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *HomeworkController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid homework id")
	}

	var req diaryDTO.UpdateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row diaryModel.HomeworkModel
	dberr := h.DB.Where("homework_id = ? AND homework_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Homework not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load homework")
	}

	if req.Title != nil {
		row.HomeworkTitle = *req.Title
	}
	if req.Description != nil {
		row.HomeworkDescription = req.Description
	}
	if req.WorkToDo != nil {
		row.HomeworkWorkToDo = req.WorkToDo
	}
	if req.DueDate != nil {
		due, perr := parseDate(*req.DueDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due_date")
		}
		row.HomeworkDueDate = due
	}
	if req.Priority != nil {
		row.HomeworkPriority = *req.Priority
	}

	if attachments, aerr := uploadHomeworkAttachments(c, schoolID); aerr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to upload attachments")
	} else if attachments != nil {
		row.HomeworkAttachments = attachments
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update homework")
	}
	return helper.JsonUpdated(c, "Homework updated", diaryDTO.NewHomeworkResponse(row))
}

func (h *HomeworkController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid homework id")
	}

	res := h.DB.Where("homework_id = ? AND homework_school_id = ?", id, schoolID).
		Delete(&diaryModel.HomeworkModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete homework")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Homework not found")
	}
	return helper.JsonDeleted(c, "Homework deleted", fiber.Map{"homework_id": id})
}
