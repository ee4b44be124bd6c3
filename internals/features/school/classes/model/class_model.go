package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel represents the `classes` collection.
type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id"        gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassSchoolID uuid.UUID `json:"class_school_id" gorm:"column:class_school_id;type:uuid;not null;index"`

	ClassName string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`

	ClassCreatedBy *uuid.UUID `json:"class_created_by,omitempty" gorm:"column:class_created_by;type:uuid"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt      gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
