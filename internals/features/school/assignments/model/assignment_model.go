package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentModel represents the `assignments` collection. Chapter and lesson
// references are optional; class and subject are required.
type AssignmentModel struct {
	AssignmentID        uuid.UUID  `json:"assignment_id"         gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssignmentSchoolID  uuid.UUID  `json:"assignment_school_id"  gorm:"column:assignment_school_id;type:uuid;not null;index"`
	AssignmentClassID   uuid.UUID  `json:"assignment_class_id"   gorm:"column:assignment_class_id;type:uuid;not null;index"`
	AssignmentSubjectID uuid.UUID  `json:"assignment_subject_id" gorm:"column:assignment_subject_id;type:uuid;not null;index"`
	AssignmentChapterID *uuid.UUID `json:"assignment_chapter_id,omitempty" gorm:"column:assignment_chapter_id;type:uuid"`
	AssignmentLessonID  *uuid.UUID `json:"assignment_lesson_id,omitempty"  gorm:"column:assignment_lesson_id;type:uuid"`

	AssignmentTopic       string  `json:"assignment_topic"                 gorm:"column:assignment_topic;type:varchar(200);not null"`
	AssignmentDescription *string `json:"assignment_description,omitempty" gorm:"column:assignment_description;type:text"`

	AssignmentAttachmentURL  *string `json:"assignment_attachment_url,omitempty"  gorm:"column:assignment_attachment_url;type:text"`
	AssignmentAttachmentName *string `json:"assignment_attachment_name,omitempty" gorm:"column:assignment_attachment_name;type:text"`

	AssignmentStartDate time.Time `json:"assignment_start_date" gorm:"column:assignment_start_date;type:timestamptz;not null"`
	AssignmentEndDate   time.Time `json:"assignment_end_date"   gorm:"column:assignment_end_date;type:timestamptz;not null;index"`

	AssignmentCreatedBy *uuid.UUID `json:"assignment_created_by,omitempty" gorm:"column:assignment_created_by;type:uuid"`

	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;type:timestamptz;not null;default:now()"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt           gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;type:timestamptz;index"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
