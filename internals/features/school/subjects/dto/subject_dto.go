package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	subjectModel "edulink_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string   `json:"subject_name" form:"subject_name" validate:"required,min=1,max=120"`
	Description *string  `json:"description"  form:"description"  validate:"omitempty,max=2000"`
	ClassIDs    []string `json:"class_ids"    form:"class_ids"    validate:"omitempty,dive,uuid4"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

type UpdateSubjectRequest struct {
	SubjectName *string   `json:"subject_name" form:"subject_name" validate:"omitempty,min=1,max=120"`
	Description *string   `json:"description"  form:"description"  validate:"omitempty,max=2000"`
	ClassIDs    *[]string `json:"class_ids"    form:"class_ids"    validate:"omitempty,dive,uuid4"`
}

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	SubjectName string    `json:"subject_name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ClassIDs    []string  `json:"class_ids"`
	ClassNames  []string  `json:"class_names,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSubjectResponse(m subjectModel.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   m.SubjectID,
		SchoolID:    m.SubjectSchoolID,
		SubjectName: m.SubjectName,
		Description: m.SubjectDescription,
		ImageURL:    m.SubjectImageURL,
		ClassIDs:    []string(m.SubjectClassIDs),
		CreatedAt:   m.SubjectCreatedAt,
	}
}

func ToStringArray(ids []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		if s := strings.TrimSpace(id); s != "" {
			out = append(out, s)
		}
	}
	return out
}
