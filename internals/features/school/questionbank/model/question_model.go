package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionModel represents the `question_collection` collection. Rows are
// authored by an external pipeline; this backend only reads them.
type QuestionModel struct {
	QuestionID       uuid.UUID `json:"question_id"        gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuestionSchoolID uuid.UUID `json:"question_school_id" gorm:"column:question_school_id;type:uuid;not null;index"`
	QuestionLessonID uuid.UUID `json:"question_lesson_id" gorm:"column:question_lesson_id;type:uuid;not null;index"`

	QuestionText    string `json:"question_text"     gorm:"column:question_text;type:text;not null"`
	QuestionOptionA string `json:"question_option_a" gorm:"column:question_option_a;type:text;not null"`
	QuestionOptionB string `json:"question_option_b" gorm:"column:question_option_b;type:text;not null"`
	QuestionOptionC string `json:"question_option_c" gorm:"column:question_option_c;type:text;not null"`
	QuestionOptionD string `json:"question_option_d" gorm:"column:question_option_d;type:text;not null"`

	QuestionCorrectAnswer string  `json:"question_correct_answer"        gorm:"column:question_correct_answer;type:varchar(1);not null"`
	QuestionExplanation   *string `json:"question_explanation,omitempty" gorm:"column:question_explanation;type:text"`

	// map of mistake type to the reasoning shown when a student picks it
	QuestionMistakeReasons datatypes.JSON `json:"question_mistake_reasons,omitempty" gorm:"column:question_mistake_reasons;type:jsonb"`

	QuestionImageURL *string `json:"question_image_url,omitempty" gorm:"column:question_image_url;type:text"`

	QuestionIsShared   bool `json:"question_is_shared"    gorm:"column:question_is_shared;not null;default:false;index"`
	QuestionIsPastYear bool `json:"question_is_past_year" gorm:"column:question_is_past_year;not null;default:false;index"`

	QuestionCreatedAt time.Time      `json:"question_created_at" gorm:"column:question_created_at;type:timestamptz;not null;default:now()"`
	QuestionUpdatedAt time.Time      `json:"question_updated_at" gorm:"column:question_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt         gorm.DeletedAt `json:"question_deleted_at,omitempty" gorm:"column:question_deleted_at;type:timestamptz;index"`
}

func (QuestionModel) TableName() string {
	return "question_collection"
}
