package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SubjectModel represents the `subjects` collection. SubjectClassIDs is the
// reference array deciding which classes see this subject.
type SubjectModel struct {
	SubjectID       uuid.UUID `json:"subject_id"        gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id" gorm:"column:subject_school_id;type:uuid;not null;index"`

	SubjectName        string  `json:"subject_name"                  gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectDescription *string `json:"subject_description,omitempty" gorm:"column:subject_description;type:text"`
	SubjectImageURL    *string `json:"subject_image_url,omitempty"   gorm:"column:subject_image_url;type:text"`

	SubjectClassIDs pq.StringArray `json:"subject_class_ids" gorm:"column:subject_class_ids;type:text[]"`

	SubjectCreatedBy *uuid.UUID `json:"subject_created_by,omitempty" gorm:"column:subject_created_by;type:uuid"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;type:timestamptz;not null;default:now()"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;type:timestamptz;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
