package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RemarkModel represents the `remarks` collection of the class diary. A
// remark targets one student; the subject reference is optional.
type RemarkModel struct {
	RemarkID        uuid.UUID  `json:"remark_id"         gorm:"column:remark_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RemarkSchoolID  uuid.UUID  `json:"remark_school_id"  gorm:"column:remark_school_id;type:uuid;not null;index"`
	RemarkClassID   uuid.UUID  `json:"remark_class_id"   gorm:"column:remark_class_id;type:uuid;not null;index"`
	RemarkStudentID uuid.UUID  `json:"remark_student_id" gorm:"column:remark_student_id;type:uuid;not null;index"`
	RemarkSubjectID *uuid.UUID `json:"remark_subject_id,omitempty" gorm:"column:remark_subject_id;type:uuid"`

	RemarkPersonal *string `json:"remark_personal,omitempty" gorm:"column:remark_personal;type:text"`
	RemarkWork     *string `json:"remark_work,omitempty"     gorm:"column:remark_work;type:text"`
	RemarkParent   *string `json:"remark_parent,omitempty"   gorm:"column:remark_parent;type:text"`

	RemarkPriority string         `json:"remark_priority" gorm:"column:remark_priority;type:varchar(10);not null;default:'medium'"`
	RemarkCategory *string        `json:"remark_category,omitempty" gorm:"column:remark_category;type:varchar(60)"`
	RemarkTags     pq.StringArray `json:"remark_tags,omitempty" gorm:"column:remark_tags;type:text[]"`

	RemarkVisibleToStudent bool `json:"remark_visible_to_student" gorm:"column:remark_visible_to_student;not null;default:false"`
	RemarkVisibleToParent  bool `json:"remark_visible_to_parent"  gorm:"column:remark_visible_to_parent;not null;default:false"`

	RemarkFollowUpRequired bool       `json:"remark_follow_up_required" gorm:"column:remark_follow_up_required;not null;default:false"`
	RemarkFollowUpDate     *time.Time `json:"remark_follow_up_date,omitempty" gorm:"column:remark_follow_up_date;type:timestamptz"`
	RemarkFollowUpNote     *string    `json:"remark_follow_up_note,omitempty" gorm:"column:remark_follow_up_note;type:text"`

	RemarkCreatedBy *uuid.UUID `json:"remark_created_by,omitempty" gorm:"column:remark_created_by;type:uuid"`

	RemarkCreatedAt time.Time      `json:"remark_created_at" gorm:"column:remark_created_at;type:timestamptz;not null;default:now()"`
	RemarkUpdatedAt time.Time      `json:"remark_updated_at" gorm:"column:remark_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"remark_deleted_at,omitempty" gorm:"column:remark_deleted_at;type:timestamptz;index"`
}

func (RemarkModel) TableName() string {
	return "remarks"
}
