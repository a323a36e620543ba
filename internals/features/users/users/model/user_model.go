package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the lab user directory. Users are the people who check in
// at the kiosk; they are not login accounts (see admins).
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserRut      string    `gorm:"column:user_rut;size:20;unique;not null" json:"user_rut"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserName     string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserLastName string    `gorm:"column:user_last_name;size:100;not null" json:"user_last_name"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
