package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeacherModel represents the `teachers` collection: the authorization
// record probed first during role resolution. TeacherUserID points at the
// login account in `users`.
type TeacherModel struct {
	TeacherID       uuid.UUID  `json:"teacher_id"        gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TeacherSchoolID *uuid.UUID `json:"teacher_school_id" gorm:"column:teacher_school_id;type:uuid;index"`
	TeacherUserID   uuid.UUID  `json:"teacher_user_id"   gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex"`

	TeacherName  string `json:"teacher_name"  gorm:"column:teacher_name;type:varchar(120);not null"`
	TeacherEmail string `json:"teacher_email" gorm:"column:teacher_email;type:varchar(255);not null"`
	TeacherCode  string `json:"teacher_code"  gorm:"column:teacher_code;type:varchar(40)"`

	// classes/subjects this teacher is attached to, as reference arrays
	TeacherClassIDs   pq.StringArray `json:"teacher_class_ids"   gorm:"column:teacher_class_ids;type:text[]"`
	TeacherSubjectIDs pq.StringArray `json:"teacher_subject_ids" gorm:"column:teacher_subject_ids;type:text[]"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;type:timestamptz;not null;default:now()"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;type:timestamptz;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
