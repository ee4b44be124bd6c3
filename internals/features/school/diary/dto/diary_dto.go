package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	diaryModel "edulink_backend/internals/features/school/diary/model"
)

/* ===============================
   Homework
=================================*/

// Attachment is one {url, name} element of the homework attachment array.
type Attachment struct {
	URL  string `json:"url"  validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

type CreateHomeworkRequest struct {
	ClassID     string  `json:"class_id"    form:"class_id"    validate:"required,uuid4"`
	SubjectID   string  `json:"subject_id"  form:"subject_id"  validate:"required,uuid4"`
	Title       string  `json:"title"       form:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	WorkToDo    *string `json:"work_to_do"  form:"work_to_do"  validate:"omitempty,max=4000"`
	DueDate     string  `json:"due_date"    form:"due_date"    validate:"required"`
	Priority    string  `json:"priority"    form:"priority"    validate:"omitempty,oneof=low medium high"`
}

func (r *CreateHomeworkRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Priority == "" {
		r.Priority = diaryModel.PriorityMedium
	}
}

type UpdateHomeworkRequest struct {
	Title       *string `json:"title"       form:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	WorkToDo    *string `json:"work_to_do"  form:"work_to_do"  validate:"omitempty,max=4000"`
	DueDate     *string `json:"due_date"    form:"due_date"    validate:"omitempty"`
	Priority    *string `json:"priority"    form:"priority"    validate:"omitempty,oneof=low medium high"`
}

type HomeworkResponse struct {
	HomeworkID  uuid.UUID      `json:"homework_id"`
	SchoolID    uuid.UUID      `json:"school_id"`
	ClassID     uuid.UUID      `json:"class_id"`
	SubjectID   uuid.UUID      `json:"subject_id"`
	ClassName   string         `json:"class_name,omitempty"`
	SubjectName string         `json:"subject_name,omitempty"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	WorkToDo    *string        `json:"work_to_do,omitempty"`
	DueDate     time.Time      `json:"due_date"`
	Priority    string         `json:"priority"`
	Attachments datatypes.JSON `json:"attachments,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func NewHomeworkResponse(m diaryModel.HomeworkModel) HomeworkResponse {
	return HomeworkResponse{
		HomeworkID:  m.HomeworkID,
		SchoolID:    m.HomeworkSchoolID,
		ClassID:     m.HomeworkClassID,
		SubjectID:   m.HomeworkSubjectID,
		Title:       m.HomeworkTitle,
		Description: m.HomeworkDescription,
		WorkToDo:    m.HomeworkWorkToDo,
		DueDate:     m.HomeworkDueDate,
		Priority:    m.HomeworkPriority,
		Attachments: m.HomeworkAttachments,
		CreatedAt:   m.HomeworkCreatedAt,
	}
}

/* ===============================
   Remarks
=================================*/

type CreateRemarkRequest struct {
	ClassID   string  `json:"class_id"   validate:"required,uuid4"`
	StudentID string  `json:"student_id" validate:"required,uuid4"`
	SubjectID *string `json:"subject_id" validate:"omitempty,uuid4"`

	PersonalRemarks *string `json:"personal_remarks" validate:"omitempty,max=4000"`
	WorkRemarks     *string `json:"work_remarks"     validate:"omitempty,max=4000"`
	ParentRemarks   *string `json:"parent_remarks"   validate:"omitempty,max=4000"`

	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category *string  `json:"category" validate:"omitempty,max=60"`
	Tags     []string `json:"tags"     validate:"omitempty,dive,min=1,max=40"`

	VisibleToStudent bool `json:"visible_to_student"`
	VisibleToParent  bool `json:"visible_to_parent"`

	FollowUpRequired bool    `json:"follow_up_required"`
	FollowUpDate     *string `json:"follow_up_date" validate:"omitempty"`
	FollowUpNote     *string `json:"follow_up_note" validate:"omitempty,max=2000"`
}

func (r *CreateRemarkRequest) Normalize() {
	if r.Priority == "" {
		r.Priority = diaryModel.PriorityMedium
	}
}

type UpdateRemarkRequest struct {
	PersonalRemarks *string `json:"personal_remarks" validate:"omitempty,max=4000"`
	WorkRemarks     *string `json:"work_remarks"     validate:"omitempty,max=4000"`
	ParentRemarks   *string `json:"parent_remarks"   validate:"omitempty,max=4000"`

	Priority *string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category *string   `json:"category" validate:"omitempty,max=60"`
	Tags     *[]string `json:"tags"     validate:"omitempty,dive,min=1,max=40"`

	VisibleToStudent *bool `json:"visible_to_student"`
	VisibleToParent  *bool `json:"visible_to_parent"`

	FollowUpRequired *bool   `json:"follow_up_required"`
	FollowUpDate     *string `json:"follow_up_date" validate:"omitempty"`
	FollowUpNote     *string `json:"follow_up_note" validate:"omitempty,max=2000"`
}

type RemarkResponse struct {
	RemarkID    uuid.UUID  `json:"remark_id"`
	SchoolID    uuid.UUID  `json:"school_id"`
	ClassID     uuid.UUID  `json:"class_id"`
	StudentID   uuid.UUID  `json:"student_id"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
	ClassName   string     `json:"class_name,omitempty"`
	StudentName string     `json:"student_name,omitempty"`
	SubjectName string     `json:"subject_name,omitempty"`

	PersonalRemarks *string `json:"personal_remarks,omitempty"`
	WorkRemarks     *string `json:"work_remarks,omitempty"`
	ParentRemarks   *string `json:"parent_remarks,omitempty"`

	Priority string   `json:"priority"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	VisibleToStudent bool `json:"visible_to_student"`
	VisibleToParent  bool `json:"visible_to_parent"`

	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`
	FollowUpNote     *string    `json:"follow_up_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewRemarkResponse(m diaryModel.RemarkModel) RemarkResponse {
	return RemarkResponse{
		RemarkID:         m.RemarkID,
		SchoolID:         m.RemarkSchoolID,
		ClassID:          m.RemarkClassID,
		StudentID:        m.RemarkStudentID,
		SubjectID:        m.RemarkSubjectID,
		PersonalRemarks:  m.RemarkPersonal,
		WorkRemarks:      m.RemarkWork,
		ParentRemarks:    m.RemarkParent,
		Priority:         m.RemarkPriority,
		Category:         m.RemarkCategory,
		Tags:             []string(m.RemarkTags),
		VisibleToStudent: m.RemarkVisibleToStudent,
		VisibleToParent:  m.RemarkVisibleToParent,
		FollowUpRequired: m.RemarkFollowUpRequired,
		FollowUpDate:     m.RemarkFollowUpDate,
		FollowUpNote:     m.RemarkFollowUpNote,
		CreatedAt:        m.RemarkCreatedAt,
	}
}
