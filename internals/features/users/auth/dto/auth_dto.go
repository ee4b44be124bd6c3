package dto

import (
	"strings"

	"github.com/google/uuid"

	authModel "edulink_backend/internals/features/users/auth/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=120"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
   RESPONSES
========================================================= */

type UserResponse struct {
	UserID   uuid.UUID  `json:"user_id"`
	UserName string     `json:"user_name"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	SchoolID *uuid.UUID `json:"school_id,omitempty"`
}

func NewUserResponse(u authModel.UserModel, role string, schoolID *uuid.UUID) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		UserName: u.UserName,
		Email:    u.UserEmail,
		Role:     role,
		SchoolID: schoolID,
	}
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// MeResponse is the resolved session context: what the SPA's AuthContext
// consumed ({ user, schoolId, userRole }).
type MeResponse struct {
	User     UserResponse `json:"user"`
	Role     string       `json:"role"`
	SchoolID *uuid.UUID   `json:"school_id,omitempty"`
}
