package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	diaryDTO "edulink_backend/internals/features/school/diary/dto"
	diaryModel "edulink_backend/internals/features/school/diary/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type RemarkController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewRemarkController(db *gorm.DB, v interface{ Struct(any) error }) *RemarkController {
	return &RemarkController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *RemarkController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req diaryDTO.CreateRemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	classID, _ := uuid.Parse(req.ClassID)
	studentID, _ := uuid.Parse(req.StudentID)
	followUpDate, err := optionalDate(req.FollowUpDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid follow_up_date")
	}

	ent := diaryModel.RemarkModel{
		RemarkSchoolID:         schoolID,
		RemarkClassID:          classID,
		RemarkStudentID:        studentID,
		RemarkSubjectID:        optionalUUID(req.SubjectID),
		RemarkPersonal:         req.PersonalRemarks,
		RemarkWork:             req.WorkRemarks,
		RemarkParent:           req.ParentRemarks,
		RemarkPriority:         req.Priority,
		RemarkCategory:         req.Category,
		RemarkTags:             pq.StringArray(req.Tags),
		RemarkVisibleToStudent: req.VisibleToStudent,
		RemarkVisibleToParent:  req.VisibleToParent,
		RemarkFollowUpRequired: req.FollowUpRequired,
		RemarkFollowUpDate:     followUpDate,
		RemarkFollowUpNote:     req.FollowUpNote,
		RemarkCreatedBy:        &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save remark")
	}
	return helper.JsonCreated(c, "Remark created", diaryDTO.NewRemarkResponse(ent))
}

func (h *RemarkController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&diaryModel.RemarkModel{}).
		Where("remark_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		if _, perr := uuid.Parse(classID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("remark_class_id = ?", classID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		if _, perr := uuid.Parse(studentID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("remark_student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count remarks")
	}

	var rows []diaryModel.RemarkModel
	if err := q.Order("remark_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load remarks")
	}

	refs := make([]resolve.Ref, 0, len(rows)*3)
	for _, r := range rows {
		refs = append(refs,
			resolve.Ref{Kind: resolve.KindClass, ID: r.RemarkClassID},
			resolve.Ref{Kind: resolve.KindStudent, ID: r.RemarkStudentID},
		)
		if r.RemarkSubjectID != nil {
			refs = append(refs, resolve.Ref{Kind: resolve.KindSubject, ID: *r.RemarkSubjectID})
		}
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]diaryDTO.RemarkResponse, 0, len(rows))
	for _, r := range rows {
		resp := diaryDTO.NewRemarkResponse(r)
		resp.ClassName = resolve.Name(resolved, resolve.KindClass, &r.RemarkClassID)
		resp.StudentName = resolve.Name(resolved, resolve.KindStudent, &r.RemarkStudentID)
		if r.RemarkSubjectID != nil {
			resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, r.RemarkSubjectID)
		}
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *RemarkController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid remark id")
	}

	var req diaryDTO.UpdateRemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row diaryModel.RemarkModel
	dberr := h.DB.Where("remark_id = ? AND remark_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Remark not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load remark")
	}

	if req.PersonalRemarks != nil {
		row.RemarkPersonal = req.PersonalRemarks
	}
	if req.WorkRemarks != nil {
		row.RemarkWork = req.WorkRemarks
	}
	if req.ParentRemarks != nil {
		row.RemarkParent = req.ParentRemarks
	}
	if req.Priority != nil {
		row.RemarkPriority = *req.Priority
	}
	if req.Category != nil {
		row.RemarkCategory = req.Category
	}
	if req.Tags != nil {
		row.RemarkTags = pq.StringArray(*req.Tags)
	}
	if req.VisibleToStudent != nil {
		row.RemarkVisibleToStudent = *req.VisibleToStudent
	}
	if req.VisibleToParent != nil {
		row.RemarkVisibleToParent = *req.VisibleToParent
	}
	if req.FollowUpRequired != nil {
		row.RemarkFollowUpRequired = *req.FollowUpRequired
	}
	if req.FollowUpDate != nil {
		followUpDate, perr := optionalDate(req.FollowUpDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid follow_up_date")
		}
		row.RemarkFollowUpDate = followUpDate
	}
	if req.FollowUpNote != nil {
		row.RemarkFollowUpNote = req.FollowUpNote
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update remark")
	}
	return helper.JsonUpdated(c, "Remark updated", diaryDTO.NewRemarkResponse(row))
}

func (h *RemarkController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid remark id")
	}

	res := h.DB.Where("remark_id = ? AND remark_school_id = ?", id, schoolID).
		Delete(&diaryModel.RemarkModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete remark")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Remark not found")
	}
	return helper.JsonDeleted(c, "Remark deleted", fiber.Map{"remark_id": id})
}
