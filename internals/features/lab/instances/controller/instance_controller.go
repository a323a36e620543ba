package controller

import (
	"errors"

	"labcontrol_backend/internals/features/lab/instances/dto"
	"labcontrol_backend/internals/features/lab/instances/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateInstance = validator.New()

// InstanceController manages the fingerprint-reader registry. Readers are
// selected per request by their registered row; no process-wide selection
// state exists.
type InstanceController struct {
	DB *gorm.DB
}

func NewInstanceController(db *gorm.DB) *InstanceController {
	return &InstanceController{DB: db}
}

func (ctrl *InstanceController) CreateInstance(c *fiber.Ctx) error {
	var body dto.CreateInstanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create instance")
	}
	if err := validateInstance.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create instance")
	}

	var existing model.InstanceModel
	err := ctrl.DB.Where("instance_code = ?", body.InstanceCode).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Instance with this id already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create instance")
	}

	instance := model.InstanceModel{
		InstanceCode:        body.InstanceCode,
		InstanceName:        body.Name,
		InstanceDescription: body.Description,
		InstancePort:        body.Port,
		InstanceEnvironment: body.Environment,
	}
	if err := ctrl.DB.Create(&instance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create instance")
	}
	return helper.JsonCreated(c, instance)
}

func (ctrl *InstanceController) ListInstances(c *fiber.Ctx) error {
	var instances []model.InstanceModel
	if err := ctrl.DB.Order("created_at ASC").Find(&instances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instances")
	}
	return helper.JsonOK(c, instances)
}
