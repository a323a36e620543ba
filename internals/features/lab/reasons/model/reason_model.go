package model

import (
	"time"

	"github.com/google/uuid"
)

// ReasonModel classifies a lab visit (Study, Meeting, ...). Referenced by
// attendance records.
type ReasonModel struct {
	ReasonID          uuid.UUID `gorm:"column:reason_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"reason_id"`
	ReasonName        string    `gorm:"column:reason_name;size:100;unique;not null" json:"reason_name"`
	ReasonDescription *string   `gorm:"column:reason_description;type:text" json:"reason_description"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReasonModel) TableName() string {
	return "reasons"
}
