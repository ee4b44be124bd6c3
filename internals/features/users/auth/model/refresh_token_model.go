package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	RefreshTokenID uuid.UUID `json:"refresh_token_id" gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID `json:"user_id"          gorm:"column:user_id;type:uuid;not null;index"`

	// sha256 of the raw token; the raw value only ever lives in the cookie
	TokenHash []byte    `json:"-"          gorm:"column:token_hash;type:bytea;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;type:timestamptz;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
