package dto

import "time"

type LoginRequest struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

type LogoutRequest struct {
	Email string `json:"Email" validate:"required,email"`
}

// LoginResponse carries the bearer token the dashboard attaches to
// every subsequent request.
type LoginResponse struct {
	Message   string    `json:"message"`
	AdminID   string    `json:"adminId"`
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
