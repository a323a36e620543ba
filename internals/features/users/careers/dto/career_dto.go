package dto

type CreateCareerRequest struct {
	Name        string  `json:"Name" validate:"required"`
	Description *string `json:"Description"`
}

type DeleteCareerRequest struct {
	Name string `json:"Name" validate:"required"`
}
