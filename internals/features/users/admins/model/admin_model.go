package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel grants dashboard access to an existing user. The password is
// stored bcrypt-hashed; one admin row per user.
type AdminModel struct {
	AdminID       uuid.UUID `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"admin_id"`
	AdminUserID   uuid.UUID `gorm:"column:admin_user_id;type:uuid;unique;not null" json:"admin_user_id"`
	AdminPassword string    `gorm:"column:admin_password;not null" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
