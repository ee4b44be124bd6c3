package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	contentModel "edulink_backend/internals/features/school/contents/model"
)

type CreateContentRequest struct {
	ClassID     string  `json:"class_id"    form:"class_id"    validate:"required,uuid4"`
	SubjectID   string  `json:"subject_id"  form:"subject_id"  validate:"required,uuid4"`
	Title       string  `json:"title"       form:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	IsVideo     bool    `json:"is_video"    form:"is_video"`

	// URL is accepted for externally hosted material; when a multipart file
	// is present the uploaded object URL wins.
	URL *string `json:"url" form:"url" validate:"omitempty,url"`
}

func (r *CreateContentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type UpdateContentRequest struct {
	Title       *string `json:"title"       form:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=4000"`
	URL         *string `json:"url"         form:"url"         validate:"omitempty,url"`
}

type ContentResponse struct {
	ContentID   uuid.UUID `json:"content_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	ClassID     uuid.UUID `json:"class_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	ClassName   string    `json:"class_name,omitempty"`
	SubjectName string    `json:"subject_name,omitempty"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	URL         string    `json:"url"`
	IsVideo     bool      `json:"is_video"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewContentResponse(m contentModel.ContentModel) ContentResponse {
	return ContentResponse{
		ContentID:   m.ContentID,
		SchoolID:    m.ContentSchoolID,
		ClassID:     m.ContentClassID,
		SubjectID:   m.ContentSubjectID,
		Title:       m.ContentTitle,
		Description: m.ContentDescription,
		URL:         m.ContentURL,
		IsVideo:     m.ContentIsVideo,
		CreatedAt:   m.ContentCreatedAt,
	}
}
