package dto

type CreateReasonRequest struct {
	Name        string  `json:"Name" validate:"required"`
	Description *string `json:"Description"`
}

type DeleteReasonRequest struct {
	Name string `json:"Name" validate:"required"`
}
