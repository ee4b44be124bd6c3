package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentModel represents the `contents` collection. Notes and videos share
// one table; ContentIsVideo picks the treatment (and the upload size limit).
type ContentModel struct {
	ContentID        uuid.UUID `json:"content_id"         gorm:"column:content_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ContentSchoolID  uuid.UUID `json:"content_school_id"  gorm:"column:content_school_id;type:uuid;not null;index"`
	ContentClassID   uuid.UUID `json:"content_class_id"   gorm:"column:content_class_id;type:uuid;not null;index"`
	ContentSubjectID uuid.UUID `json:"content_subject_id" gorm:"column:content_subject_id;type:uuid;not null;index"`

	ContentTitle       string  `json:"content_title"                 gorm:"column:content_title;type:varchar(200);not null"`
	ContentDescription *string `json:"content_description,omitempty" gorm:"column:content_description;type:text"`
	ContentURL         string  `json:"content_url"                   gorm:"column:content_url;type:text;not null"`

	ContentIsVideo bool `json:"content_is_video" gorm:"column:content_is_video;not null;default:false;index"`

	ContentCreatedBy *uuid.UUID `json:"content_created_by,omitempty" gorm:"column:content_created_by;type:uuid"`

	ContentCreatedAt time.Time      `json:"content_created_at" gorm:"column:content_created_at;type:timestamptz;not null;default:now()"`
	ContentUpdatedAt time.Time      `json:"content_updated_at" gorm:"column:content_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"content_deleted_at,omitempty" gorm:"column:content_deleted_at;type:timestamptz;index"`
}

func (ContentModel) TableName() string {
	return "contents"
}
