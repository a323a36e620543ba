package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleModel struct {
	RoleID          uuid.UUID `gorm:"column:role_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"role_id"`
	RoleName        string    `gorm:"column:role_name;size:100;unique;not null" json:"role_name"`
	RoleDescription *string   `gorm:"column:role_description;type:text" json:"role_description"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}
