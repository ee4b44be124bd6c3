package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the `users` collection. A user row with a school
// attached is a school admin; teachers have their own record in `teachers`
// on top of this one.
type UserModel struct {
	UserID       uuid.UUID  `json:"user_id"                  gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty" gorm:"column:user_school_id;type:uuid"`

	UserName  string `json:"user_name"  gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"`

	UserPassword string `json:"-" gorm:"column:user_password;type:text;not null"`

	UserRole     string `json:"user_role"      gorm:"column:user_role;type:varchar(20);not null;default:'user'"`
	UserIsActive bool   `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt     gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string {
	return "users"
}
