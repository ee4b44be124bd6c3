package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds access tokens invalidated by logout until they
// would have expired anyway; the cleanup scheduler reaps old rows.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey"`

	Token     string    `json:"token"      gorm:"column:token;type:text;not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;type:timestamptz;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
