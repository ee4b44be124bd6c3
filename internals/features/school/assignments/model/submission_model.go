package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusGraded    = "graded"
	SubmissionStatusRejected  = "rejected"
)

// SubmissionModel represents the `assignment_submitted` collection. Rows are
// created by the student flow; teachers only grade them here.
type SubmissionModel struct {
	SubmissionID           uuid.UUID `json:"submission_id"            gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubmissionSchoolID     uuid.UUID `json:"submission_school_id"     gorm:"column:submission_school_id;type:uuid;not null;index"`
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" gorm:"column:submission_assignment_id;type:uuid;not null;index"`
	SubmissionStudentID    uuid.UUID `json:"submission_student_id"    gorm:"column:submission_student_id;type:uuid;not null;index"`

	SubmissionURL      *string  `json:"submission_url,omitempty"      gorm:"column:submission_url;type:text"`
	SubmissionGrade    *float64 `json:"submission_grade,omitempty"    gorm:"column:submission_grade;type:numeric"`
	SubmissionFeedback *string  `json:"submission_feedback,omitempty" gorm:"column:submission_feedback;type:text"`

	SubmissionStatus string `json:"submission_status" gorm:"column:submission_status;type:varchar(20);not null;default:'submitted'"`

	SubmissionCreatedAt time.Time      `json:"submission_created_at" gorm:"column:submission_created_at;type:timestamptz;not null;default:now()"`
	SubmissionUpdatedAt time.Time      `json:"submission_updated_at" gorm:"column:submission_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt           gorm.DeletedAt `json:"submission_deleted_at,omitempty" gorm:"column:submission_deleted_at;type:timestamptz;index"`
}

func (SubmissionModel) TableName() string {
	return "assignment_submitted"
}
