package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	lessonModel "edulink_backend/internals/features/school/lessons/model"
)

type CreateLessonRequest struct {
	SubjectID   string  `json:"subject_id"  validate:"required,uuid4"`
	ChapterID   string  `json:"chapter_id"  validate:"required,uuid4"`
	LessonName  string  `json:"lesson_name" validate:"required,min=1,max=160"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Content     *string `json:"content"     validate:"omitempty"`
	OrderIndex  int     `json:"order_index" validate:"gte=0"`
}

func (r *CreateLessonRequest) Normalize() {
	r.LessonName = strings.TrimSpace(r.LessonName)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

type UpdateLessonRequest struct {
	LessonName  *string `json:"lesson_name" validate:"omitempty,min=1,max=160"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Content     *string `json:"content"     validate:"omitempty"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,gte=0"`
}

type LessonResponse struct {
	LessonID    uuid.UUID `json:"lesson_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	ChapterID   uuid.UUID `json:"chapter_id"`
	SubjectName string    `json:"subject_name,omitempty"`
	ChapterName string    `json:"chapter_name,omitempty"`
	LessonName  string    `json:"lesson_name"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLessonResponse(m lessonModel.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:    m.LessonID,
		SchoolID:    m.LessonSchoolID,
		SubjectID:   m.LessonSubjectID,
		ChapterID:   m.LessonChapterID,
		LessonName:  m.LessonName,
		Description: m.LessonDescription,
		Content:     m.LessonContent,
		OrderIndex:  m.LessonOrderIndex,
		CreatedAt:   m.LessonCreatedAt,
	}
}

// GenerateLessonRequest is the body of the lesson planner proxy call.
type GenerateLessonRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=8000"`
}

type GenerateLessonResponse struct {
	LessonPlan string `json:"lessonPlan"`
}
