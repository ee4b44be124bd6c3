package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	assignmentModel "edulink_backend/internals/features/school/assignments/model"
)

/* ===============================
   Status derivation
=================================*/

const (
	StatusUpcoming = "Upcoming"
	StatusActive   = "Active"
	StatusOverdue  = "Overdue"
)

// DeriveStatus is a pure date comparison. Overdue only when the end date is
// strictly in the past; at now == end the assignment is still Active.
func DeriveStatus(start, end, now time.Time) string {
	if end.Before(now) {
		return StatusOverdue
	}
	if start.After(now) {
		return StatusUpcoming
	}
	return StatusActive
}

/* ===============================
   Requests
=================================*/

type CreateAssignmentRequest struct {
	ClassID     string  `json:"class_id"    form:"class_id"    validate:"required,uuid4"`
	SubjectID   string  `json:"subject_id"  form:"subject_id"  validate:"required,uuid4"`
	ChapterID   *string `json:"chapter_id"  form:"chapter_id"  validate:"omitempty,uuid4"`
	LessonID    *string `json:"lesson_id"   form:"lesson_id"   validate:"omitempty,uuid4"`
	Topic       string  `json:"topic"       form:"topic"       validate:"required,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	StartDate   string  `json:"start_date"  form:"start_date"  validate:"required"`
	EndDate     string  `json:"end_date"    form:"end_date"    validate:"required"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

type UpdateAssignmentRequest struct {
	ChapterID   *string `json:"chapter_id"  form:"chapter_id"  validate:"omitempty,uuid4"`
	LessonID    *string `json:"lesson_id"   form:"lesson_id"   validate:"omitempty,uuid4"`
	Topic       *string `json:"topic"       form:"topic"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	StartDate   *string `json:"start_date"  form:"start_date"  validate:"omitempty"`
	EndDate     *string `json:"end_date"    form:"end_date"    validate:"omitempty"`
}

type GradeSubmissionRequest struct {
	Grade    *float64 `json:"grade"    validate:"omitempty,gte=0,lte=100"`
	Feedback *string  `json:"feedback" validate:"omitempty,max=2000"`
	Status   string   `json:"status"   validate:"required,oneof=graded rejected"`
}

/* ===============================
   Responses
=================================*/

type AssignmentResponse struct {
	AssignmentID   uuid.UUID  `json:"assignment_id"`
	SchoolID       uuid.UUID  `json:"school_id"`
	ClassID        uuid.UUID  `json:"class_id"`
	SubjectID      uuid.UUID  `json:"subject_id"`
	ChapterID      *uuid.UUID `json:"chapter_id,omitempty"`
	LessonID       *uuid.UUID `json:"lesson_id,omitempty"`
	ClassName      string     `json:"class_name,omitempty"`
	SubjectName    string     `json:"subject_name,omitempty"`
	Topic          string     `json:"topic"`
	Description    *string    `json:"description,omitempty"`
	AttachmentURL  *string    `json:"attachment_url,omitempty"`
	AttachmentName *string    `json:"attachment_name,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewAssignmentResponse(m assignmentModel.AssignmentModel, now time.Time) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:   m.AssignmentID,
		SchoolID:       m.AssignmentSchoolID,
		ClassID:        m.AssignmentClassID,
		SubjectID:      m.AssignmentSubjectID,
		ChapterID:      m.AssignmentChapterID,
		LessonID:       m.AssignmentLessonID,
		Topic:          m.AssignmentTopic,
		Description:    m.AssignmentDescription,
		AttachmentURL:  m.AssignmentAttachmentURL,
		AttachmentName: m.AssignmentAttachmentName,
		StartDate:      m.AssignmentStartDate,
		EndDate:        m.AssignmentEndDate,
		Status:         DeriveStatus(m.AssignmentStartDate, m.AssignmentEndDate, now),
		CreatedAt:      m.AssignmentCreatedAt,
	}
}

type SubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name,omitempty"`
	URL          *string   `json:"submission_url,omitempty"`
	Grade        *float64  `json:"grade,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func NewSubmissionResponse(m assignmentModel.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: m.SubmissionID,
		AssignmentID: m.SubmissionAssignmentID,
		StudentID:    m.SubmissionStudentID,
		URL:          m.SubmissionURL,
		Grade:        m.SubmissionGrade,
		Feedback:     m.SubmissionFeedback,
		Status:       m.SubmissionStatus,
		SubmittedAt:  m.SubmissionCreatedAt,
	}
}
