package dto

// Request bodies keep the field casing the dashboard client sends.

type CreateUserRequest struct {
	Rut      string `json:"Rut" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
	Name     string `json:"Name" validate:"required"`
	Lastname string `json:"Lastname" validate:"required"`
}

type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}
