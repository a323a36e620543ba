package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel is the registry of live admin tokens. The unique admin id
// keeps at most one live token per admin; login replaces it, logout and
// the auth middleware treat a missing row as revoked.
type TokenModel struct {
	TokenID        uuid.UUID `gorm:"column:token_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"token_id"`
	TokenAdminID   uuid.UUID `gorm:"column:token_admin_id;type:uuid;unique;not null" json:"token_admin_id"`
	TokenValue     string    `gorm:"column:token_value;type:text;not null;index" json:"-"`
	TokenExpiresAt time.Time `gorm:"column:token_expires_at;not null" json:"token_expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenModel) TableName() string {
	return "auth_tokens"
}
