package dto

type CreateInstanceRequest struct {
	InstanceCode string  `json:"instanceId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	Port         int     `json:"port" validate:"required,min=1,max=65535"`
	Environment  *string `json:"environment"`
}
