package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	teacherModel "edulink_backend/internals/features/users/teachers/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type CreateTeacherRequest struct {
	TeacherName  string   `json:"teacher_name"  validate:"required,min=2,max=120"`
	TeacherEmail string   `json:"teacher_email" validate:"required,email,max=255"`
	TeacherCode  string   `json:"teacher_code"  validate:"omitempty,max=40"`
	Password     string   `json:"password"      validate:"omitempty,min=8,max=72"`
	ClassIDs     []string `json:"class_ids"     validate:"omitempty,dive,uuid4"`
	SubjectIDs   []string `json:"subject_ids"   validate:"omitempty,dive,uuid4"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeacherName = strings.TrimSpace(r.TeacherName)
	r.TeacherEmail = strings.ToLower(strings.TrimSpace(r.TeacherEmail))
	r.TeacherCode = strings.TrimSpace(r.TeacherCode)
}

type UpdateTeacherRequest struct {
	TeacherName *string   `json:"teacher_name" validate:"omitempty,min=2,max=120"`
	TeacherCode *string   `json:"teacher_code" validate:"omitempty,max=40"`
	ClassIDs    *[]string `json:"class_ids"    validate:"omitempty,dive,uuid4"`
	SubjectIDs  *[]string `json:"subject_ids"  validate:"omitempty,dive,uuid4"`
}

/* =========================================================
   RESPONSES
========================================================= */

type TeacherResponse struct {
	TeacherID    uuid.UUID  `json:"teacher_id"`
	TeacherUserID uuid.UUID `json:"teacher_user_id"`
	SchoolID     *uuid.UUID `json:"school_id,omitempty"`
	TeacherName  string     `json:"teacher_name"`
	TeacherEmail string     `json:"teacher_email"`
	TeacherCode  string     `json:"teacher_code,omitempty"`
	ClassIDs     []string   `json:"class_ids"`
	SubjectIDs   []string   `json:"subject_ids"`
	ClassNames   []string   `json:"class_names,omitempty"`
	SubjectNames []string   `json:"subject_names,omitempty"`
}

func NewTeacherResponse(m teacherModel.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:     m.TeacherID,
		TeacherUserID: m.TeacherUserID,
		SchoolID:      m.TeacherSchoolID,
		TeacherName:   m.TeacherName,
		TeacherEmail:  m.TeacherEmail,
		TeacherCode:   m.TeacherCode,
		ClassIDs:      []string(m.TeacherClassIDs),
		SubjectIDs:    []string(m.TeacherSubjectIDs),
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
