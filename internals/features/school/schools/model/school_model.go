package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is the tenant root. Schools are created out-of-band (seeder
// or ops tooling), never through this app's API; everything else carries a
// school reference that queries are filtered by.
type SchoolModel struct {
	SchoolID   uuid.UUID `json:"school_id"   gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolName string    `json:"school_name" gorm:"column:school_name;type:varchar(160);not null"`

	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;type:timestamptz;not null;default:now()"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;type:timestamptz;index"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
