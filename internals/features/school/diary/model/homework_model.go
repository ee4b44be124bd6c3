package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// HomeworkModel represents the `homeworks` collection of the class diary.
// HomeworkAttachments holds an array of {url, name} objects.
type HomeworkModel struct {
	HomeworkID        uuid.UUID `json:"homework_id"         gorm:"column:homework_id;type:uuid;default:gen_random_uuid();primaryKey"`
	HomeworkSchoolID  uuid.UUID `json:"homework_school_id"  gorm:"column:homework_school_id;type:uuid;not null;index"`
	HomeworkClassID   uuid.UUID `json:"homework_class_id"   gorm:"column:homework_class_id;type:uuid;not null;index"`
	HomeworkSubjectID uuid.UUID `json:"homework_subject_id" gorm:"column:homework_subject_id;type:uuid;not null;index"`

	HomeworkTitle       string  `json:"homework_title"                 gorm:"column:homework_title;type:varchar(200);not null"`
	HomeworkDescription *string `json:"homework_description,omitempty" gorm:"column:homework_description;type:text"`
	HomeworkWorkToDo    *string `json:"homework_work_to_do,omitempty"  gorm:"column:homework_work_to_do;type:text"`

	HomeworkDueDate  time.Time `json:"homework_due_date" gorm:"column:homework_due_date;type:timestamptz;not null;index"`
	HomeworkPriority string    `json:"homework_priority" gorm:"column:homework_priority;type:varchar(10);not null;default:'medium'"`

	HomeworkAttachments datatypes.JSON `json:"homework_attachments,omitempty" gorm:"column:homework_attachments;type:jsonb"`

	HomeworkCreatedBy *uuid.UUID `json:"homework_created_by,omitempty" gorm:"column:homework_created_by;type:uuid"`

	HomeworkCreatedAt time.Time      `json:"homework_created_at" gorm:"column:homework_created_at;type:timestamptz;not null;default:now()"`
	HomeworkUpdatedAt time.Time      `json:"homework_updated_at" gorm:"column:homework_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt         gorm.DeletedAt `json:"homework_deleted_at,omitempty" gorm:"column:homework_deleted_at;type:timestamptz;index"`
}

func (HomeworkModel) TableName() string {
	return "homeworks"
}
