package controller

import (
	"errors"

	"labcontrol_backend/internals/features/lab/reasons/dto"
	"labcontrol_backend/internals/features/lab/reasons/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateReason = validator.New()

type ReasonController struct {
	DB *gorm.DB
}

func NewReasonController(db *gorm.DB) *ReasonController {
	return &ReasonController{DB: db}
}

func (ctrl *ReasonController) CreateReason(c *fiber.Ctx) error {
	var body dto.CreateReasonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create reason")
	}
	if err := validateReason.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create reason")
	}

	var existing model.ReasonModel
	err := ctrl.DB.Where("reason_name = ?", body.Name).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Reason with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create reason")
	}

	reason := model.ReasonModel{ReasonName: body.Name, ReasonDescription: body.Description}
	if err := ctrl.DB.Create(&reason).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create reason")
	}
	return helper.JsonCreated(c, reason)
}

func (ctrl *ReasonController) ListReasons(c *fiber.Ctx) error {
	var reasons []model.ReasonModel
	if err := ctrl.DB.Order("reason_name ASC").Find(&reasons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reasons")
	}
	return helper.JsonOK(c, reasons)
}

func (ctrl *ReasonController) DeleteReasonByName(c *fiber.Ctx) error {
	var body dto.DeleteReasonRequest
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Reason Name is required")
	}

	var reason model.ReasonModel
	if err := ctrl.DB.Where("reason_name = ?", body.Name).First(&reason).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reason not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete reason")
	}

	if err := ctrl.DB.Delete(&reason).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete reason")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Reason deleted successfully")
}
