package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	questionModel "edulink_backend/internals/features/school/questionbank/model"
)

type QuestionResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	LessonID   uuid.UUID `json:"lesson_id"`
	LessonName string    `json:"lesson_name,omitempty"`

	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`

	Explanation    *string        `json:"explanation,omitempty"`
	MistakeReasons datatypes.JSON `json:"mistake_reasons,omitempty"`
	ImageURL       *string        `json:"image_url,omitempty"`

	IsShared   bool `json:"is_shared"`
	IsPastYear bool `json:"is_past_year"`

	CreatedAt time.Time `json:"created_at"`
}

func NewQuestionResponse(m questionModel.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:     m.QuestionID,
		LessonID:       m.QuestionLessonID,
		QuestionText:   m.QuestionText,
		OptionA:        m.QuestionOptionA,
		OptionB:        m.QuestionOptionB,
		OptionC:        m.QuestionOptionC,
		OptionD:        m.QuestionOptionD,
		CorrectAnswer:  m.QuestionCorrectAnswer,
		Explanation:    m.QuestionExplanation,
		MistakeReasons: m.QuestionMistakeReasons,
		ImageURL:       m.QuestionImageURL,
		IsShared:       m.QuestionIsShared,
		IsPastYear:     m.QuestionIsPastYear,
		CreatedAt:      m.QuestionCreatedAt,
	}
}

// QuestionCountsResponse mirrors the three cached counters.
type QuestionCountsResponse struct {
	SchoolQuestionCount   int64 `json:"school_question_count"`
	SharedBankCount       int64 `json:"shared_bank_count"`
	PastYearQuestionCount int64 `json:"past_year_question_count"`
}
