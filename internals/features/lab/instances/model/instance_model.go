package model

import (
	"time"

	"github.com/google/uuid"
)

// InstanceModel registers a fingerprint-reader instance reachable over
// HTTP. Readers are addressed by their registered row; there is no
// process-wide "selected reader" state.
type InstanceModel struct {
	InstanceID          uuid.UUID `gorm:"column:instance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"instance_id"`
	InstanceCode        string    `gorm:"column:instance_code;size:100;unique;not null" json:"instance_code"`
	InstanceName        string    `gorm:"column:instance_name;size:100;unique;not null" json:"instance_name"`
	InstanceDescription *string   `gorm:"column:instance_description;type:text" json:"instance_description"`
	InstancePort        int       `gorm:"column:instance_port;unique;not null" json:"instance_port"`
	InstanceEnvironment *string   `gorm:"column:instance_environment;size:50" json:"instance_environment"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InstanceModel) TableName() string {
	return "instances"
}
