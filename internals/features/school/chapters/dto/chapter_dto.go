package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	chapterModel "edulink_backend/internals/features/school/chapters/model"
)

type CreateChapterRequest struct {
	SubjectID   string  `json:"subject_id"  validate:"required,uuid4"`
	ChapterName string  `json:"chapter_name" validate:"required,min=1,max=160"`
	Description *string `json:"description"  validate:"omitempty,max=2000"`
	OrderIndex  int     `json:"order_index"  validate:"gte=0"`
}

func (r *CreateChapterRequest) Normalize() {
	r.ChapterName = strings.TrimSpace(r.ChapterName)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

type UpdateChapterRequest struct {
	ChapterName *string `json:"chapter_name" validate:"omitempty,min=1,max=160"`
	Description *string `json:"description"  validate:"omitempty,max=2000"`
	OrderIndex  *int    `json:"order_index"  validate:"omitempty,gte=0"`
}

type ChapterResponse struct {
	ChapterID   uuid.UUID `json:"chapter_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name,omitempty"`
	ChapterName string    `json:"chapter_name"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewChapterResponse(m chapterModel.ChapterModel) ChapterResponse {
	return ChapterResponse{
		ChapterID:   m.ChapterID,
		SchoolID:    m.ChapterSchoolID,
		SubjectID:   m.ChapterSubjectID,
		ChapterName: m.ChapterName,
		Description: m.ChapterDescription,
		OrderIndex:  m.ChapterOrderIndex,
		CreatedAt:   m.ChapterCreatedAt,
	}
}
