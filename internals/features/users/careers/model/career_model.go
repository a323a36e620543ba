package model

import (
	"time"

	"github.com/google/uuid"
)

type CareerModel struct {
	CareerID          uuid.UUID `gorm:"column:career_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"career_id"`
	CareerName        string    `gorm:"column:career_name;size:150;unique;not null" json:"career_name"`
	CareerDescription *string   `gorm:"column:career_description;type:text" json:"career_description"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CareerModel) TableName() string {
	return "careers"
}
