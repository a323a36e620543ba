package controller

import (
	"errors"

	"labcontrol_backend/internals/features/users/careers/dto"
	"labcontrol_backend/internals/features/users/careers/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateCareer = validator.New()

type CareerController struct {
	DB *gorm.DB
}

func NewCareerController(db *gorm.DB) *CareerController {
	return &CareerController{DB: db}
}

func (ctrl *CareerController) CreateCareer(c *fiber.Ctx) error {
	var body dto.CreateCareerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create career")
	}
	if err := validateCareer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create career")
	}

	var existing model.CareerModel
	err := ctrl.DB.Where("career_name = ?", body.Name).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Career with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create career")
	}

	career := model.CareerModel{CareerName: body.Name, CareerDescription: body.Description}
	if err := ctrl.DB.Create(&career).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create career")
	}
	return helper.JsonCreated(c, career)
}

func (ctrl *CareerController) ListCareers(c *fiber.Ctx) error {
	var careers []model.CareerModel
	if err := ctrl.DB.Order("career_name ASC").Find(&careers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch careers")
	}
	return helper.JsonOK(c, careers)
}

func (ctrl *CareerController) DeleteCareerByName(c *fiber.Ctx) error {
	var body dto.DeleteCareerRequest
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Career Name is required")
	}

	var career model.CareerModel
	if err := ctrl.DB.Where("career_name = ?", body.Name).First(&career).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Career not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete career")
	}

	if err := ctrl.DB.Delete(&career).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete career")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Career deleted successfully")
}
