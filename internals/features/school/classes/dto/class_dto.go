package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	classModel "edulink_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName string `json:"class_name" form:"class_name" validate:"required,min=1,max=120"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
}

type UpdateClassRequest struct {
	ClassName *string `json:"class_name" form:"class_name" validate:"omitempty,min=1,max=120"`
}

type ClassResponse struct {
	ClassID   uuid.UUID `json:"class_id"`
	SchoolID  uuid.UUID `json:"school_id"`
	ClassName string    `json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClassResponse(m classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:   m.ClassID,
		SchoolID:  m.ClassSchoolID,
		ClassName: m.ClassName,
		CreatedAt: m.ClassCreatedAt,
	}
}
