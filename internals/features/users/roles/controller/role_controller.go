package controller

import (
	"errors"

	"labcontrol_backend/internals/features/users/roles/dto"
	"labcontrol_backend/internals/features/users/roles/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateRole = validator.New()

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var body dto.CreateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create role")
	}
	if err := validateRole.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create role")
	}

	var existing model.RoleModel
	err := ctrl.DB.Where("role_name = ?", body.Name).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Role with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create role")
	}

	role := model.RoleModel{RoleName: body.Name, RoleDescription: body.Description}
	if err := ctrl.DB.Create(&role).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create role")
	}
	return helper.JsonCreated(c, role)
}

func (ctrl *RoleController) ListRoles(c *fiber.Ctx) error {
	var roles []model.RoleModel
	if err := ctrl.DB.Order("role_name ASC").Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch roles")
	}
	return helper.JsonOK(c, roles)
}

func (ctrl *RoleController) DeleteRoleByName(c *fiber.Ctx) error {
	var body dto.DeleteRoleRequest
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role name is required")
	}

	var role model.RoleModel
	if err := ctrl.DB.Where("role_name = ?", body.Name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete role")
	}

	if err := ctrl.DB.Delete(&role).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete role")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Role deleted successfully")
}
