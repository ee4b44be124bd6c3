package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentDTO "edulink_backend/internals/features/school/assignments/dto"
	assignmentModel "edulink_backend/internals/features/school/assignments/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	helperOSS "edulink_backend/internals/helpers/oss"
	"edulink_backend/internals/helpers/resolve"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewAssignmentController(db *gorm.DB, v interface{ Struct(any) error }) *AssignmentController {
	return &AssignmentController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func (h *AssignmentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_date")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	classID, _ := uuid.Parse(req.ClassID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	ent := assignmentModel.AssignmentModel{
		AssignmentSchoolID:    schoolID,
		AssignmentClassID:     classID,
		AssignmentSubjectID:   subjectID,
		AssignmentChapterID:   parseOptionalUUID(req.ChapterID),
		AssignmentLessonID:    parseOptionalUUID(req.LessonID),
		AssignmentTopic:       req.Topic,
		AssignmentDescription: req.Description,
		AssignmentStartDate:   start,
		AssignmentEndDate:     end,
		AssignmentCreatedBy:   &userID,
	}

	// optional multipart attachment, stored as-is under the assignments prefix
	if fh, ferr := c.FormFile("attachment"); ferr == nil && fh != nil {
		svc, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "File storage is unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 60*time.Second)
		defer cancel()
		url, _, uerr := svc.UploadAttachment(ctx, "assignments", schoolID, fh, helperOSS.MaxAttachmentSize)
		if uerr != nil {
			log.Println("[ERROR] assignment attachment upload:", uerr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to upload attachment")
		}
		ent.AssignmentAttachmentURL = &url
		ent.AssignmentAttachmentName = &fh.Filename
	}

	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save assignment")
	}
	return helper.JsonCreated(c, "Assignment created", assignmentDTO.NewAssignmentResponse(ent, time.Now()))
}

// List returns assignments end-date descending so the closest deadlines and
// the freshest overdue work come first. ?class_id= and ?subject_id= narrow.
func (h *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		if _, perr := uuid.Parse(classID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("assignment_class_id = ?", classID)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		if _, perr := uuid.Parse(subjectID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("assignment_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []assignmentModel.AssignmentModel
	if err := q.Order("assignment_end_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignments")
	}

	refs := make([]resolve.Ref, 0, len(rows)*2)
	for _, r := range rows {
		refs = append(refs,
			resolve.Ref{Kind: resolve.KindClass, ID: r.AssignmentClassID},
			resolve.Ref{Kind: resolve.KindSubject, ID: r.AssignmentSubjectID},
		)
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	now := time.Now()
	out := make([]assignmentDTO.AssignmentResponse, 0, len(rows))
	for _, r := range rows {
		resp := assignmentDTO.NewAssignmentResponse(r, now)
		resp.ClassName = resolve.Name(resolved, resolve.KindClass, &r.AssignmentClassID)
		resp.SubjectName = resolve.Name(resolved, resolve.KindSubject, &r.AssignmentSubjectID)
		out = append(out, resp)
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *AssignmentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row assignmentModel.AssignmentModel
	dberr := h.DB.Where("assignment_id = ? AND assignment_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}

	if req.Topic != nil {
		row.AssignmentTopic = *req.Topic
	}
	if req.Description != nil {
		row.AssignmentDescription = req.Description
	}
	if req.ChapterID != nil {
		row.AssignmentChapterID = parseOptionalUUID(req.ChapterID)
	}
	if req.LessonID != nil {
		row.AssignmentLessonID = parseOptionalUUID(req.LessonID)
	}
	if req.StartDate != nil {
		start, perr := parseDate(*req.StartDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_date")
		}
		row.AssignmentStartDate = start
	}
	if req.EndDate != nil {
		end, perr := parseDate(*req.EndDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_date")
		}
		row.AssignmentEndDate = end
	}
	if row.AssignmentEndDate.Before(row.AssignmentStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	if fh, ferr := c.FormFile("attachment"); ferr == nil && fh != nil {
		svc, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "File storage is unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 60*time.Second)
		defer cancel()
		url, _, uerr := svc.UploadAttachment(ctx, "assignments", schoolID, fh, helperOSS.MaxAttachmentSize)
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to upload attachment")
		}
		row.AssignmentAttachmentURL = &url
		row.AssignmentAttachmentName = &fh.Filename
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", assignmentDTO.NewAssignmentResponse(row, time.Now()))
}

func (h *AssignmentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	res := h.DB.Where("assignment_id = ? AND assignment_school_id = ?", id, schoolID).
		Delete(&assignmentModel.AssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"assignment_id": id})
}

/* ===============================
   Submissions
=================================*/

// ListSubmissions returns the submissions of one assignment with student
// names resolved.
func (h *AssignmentController) ListSubmissions(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var rows []assignmentModel.SubmissionModel
	if err := h.DB.
		Where("submission_assignment_id = ? AND submission_school_id = ?", assignmentID, schoolID).
		Order("submission_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submissions")
	}

	refs := make([]resolve.Ref, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, resolve.Ref{Kind: resolve.KindStudent, ID: r.SubmissionStudentID})
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]assignmentDTO.SubmissionResponse, 0, len(rows))
	for _, r := range rows {
		resp := assignmentDTO.NewSubmissionResponse(r)
		resp.StudentName = resolve.Name(resolved, resolve.KindStudent, &r.SubmissionStudentID)
		out = append(out, resp)
	}
	return helper.JsonOK(c, "OK", out)
}

func (h *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	submissionID, err := uuid.Parse(c.Params("submission_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req assignmentDTO.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row assignmentModel.SubmissionModel
	dberr := h.DB.Where("submission_id = ? AND submission_school_id = ?", submissionID, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	row.SubmissionGrade = req.Grade
	row.SubmissionFeedback = req.Feedback
	row.SubmissionStatus = req.Status
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}
	return helper.JsonUpdated(c, "Submission graded", assignmentDTO.NewSubmissionResponse(row))
}
