package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required,min=8"`
}

type DeleteAdminRequest struct {
	Email string `json:"Email" validate:"required,email"`
}

// AdminWithUser is the flattened admin list row: admin columns merged
// with the owning user's display columns.
type AdminWithUser struct {
	AdminID   uuid.UUID `json:"admin_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rut       string    `json:"user_rut"`
	Email     string    `json:"user_email"`
	Name      string    `json:"user_name"`
	LastName  string    `json:"user_last_name"`
	CreatedAt time.Time `json:"created_at"`
}
