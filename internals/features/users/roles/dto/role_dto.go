package dto

type CreateRoleRequest struct {
	Name        string  `json:"Name" validate:"required"`
	Description *string `json:"Description"`
}

type DeleteRoleRequest struct {
	Name string `json:"name" validate:"required"`
}
