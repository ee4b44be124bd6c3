package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonModel represents the `lessons` collection. A lesson sits inside one
// chapter of one subject and carries the lesson plan body in LessonContent.
type LessonModel struct {
	LessonID        uuid.UUID `json:"lesson_id"         gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LessonSchoolID  uuid.UUID `json:"lesson_school_id"  gorm:"column:lesson_school_id;type:uuid;not null;index"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id" gorm:"column:lesson_subject_id;type:uuid;not null;index"`
	LessonChapterID uuid.UUID `json:"lesson_chapter_id" gorm:"column:lesson_chapter_id;type:uuid;not null;index"`

	LessonName        string  `json:"lesson_name"                  gorm:"column:lesson_name;type:varchar(160);not null"`
	LessonDescription *string `json:"lesson_description,omitempty" gorm:"column:lesson_description;type:text"`
	LessonContent     *string `json:"lesson_content,omitempty"     gorm:"column:lesson_content;type:text"`

	LessonOrderIndex int `json:"lesson_order_index" gorm:"column:lesson_order_index;type:int;not null;default:0"`

	LessonCreatedBy *uuid.UUID `json:"lesson_created_by,omitempty" gorm:"column:lesson_created_by;type:uuid"`

	LessonCreatedAt time.Time      `json:"lesson_created_at" gorm:"column:lesson_created_at;type:timestamptz;not null;default:now()"`
	LessonUpdatedAt time.Time      `json:"lesson_updated_at" gorm:"column:lesson_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"lesson_deleted_at,omitempty" gorm:"column:lesson_deleted_at;type:timestamptz;index"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
