package model

import "github.com/google/uuid"

// Join tables linking users to the role and career catalogs.

type UserRoleModel struct {
	UserRoleUserID uuid.UUID `gorm:"column:user_role_user_id;type:uuid;primaryKey" json:"user_role_user_id"`
	UserRoleRoleID uuid.UUID `gorm:"column:user_role_role_id;type:uuid;primaryKey" json:"user_role_role_id"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

type UserCareerModel struct {
	UserCareerUserID   uuid.UUID `gorm:"column:user_career_user_id;type:uuid;primaryKey" json:"user_career_user_id"`
	UserCareerCareerID uuid.UUID `gorm:"column:user_career_career_id;type:uuid;primaryKey" json:"user_career_career_id"`
}

func (UserCareerModel) TableName() string {
	return "user_careers"
}
