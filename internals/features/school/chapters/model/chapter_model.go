package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChapterModel represents the `chapters` collection. A chapter belongs to one
// subject and is ordered inside it by ChapterOrderIndex.
type ChapterModel struct {
	ChapterID        uuid.UUID `json:"chapter_id"         gorm:"column:chapter_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ChapterSchoolID  uuid.UUID `json:"chapter_school_id"  gorm:"column:chapter_school_id;type:uuid;not null;index"`
	ChapterSubjectID uuid.UUID `json:"chapter_subject_id" gorm:"column:chapter_subject_id;type:uuid;not null;index"`

	ChapterName        string  `json:"chapter_name"                  gorm:"column:chapter_name;type:varchar(160);not null"`
	ChapterDescription *string `json:"chapter_description,omitempty" gorm:"column:chapter_description;type:text"`

	ChapterOrderIndex int `json:"chapter_order_index" gorm:"column:chapter_order_index;type:int;not null;default:0"`

	ChapterCreatedBy *uuid.UUID `json:"chapter_created_by,omitempty" gorm:"column:chapter_created_by;type:uuid"`

	ChapterCreatedAt time.Time      `json:"chapter_created_at" gorm:"column:chapter_created_at;type:timestamptz;not null;default:now()"`
	ChapterUpdatedAt time.Time      `json:"chapter_updated_at" gorm:"column:chapter_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"chapter_deleted_at,omitempty" gorm:"column:chapter_deleted_at;type:timestamptz;index"`
}

func (ChapterModel) TableName() string {
	return "chapters"
}
