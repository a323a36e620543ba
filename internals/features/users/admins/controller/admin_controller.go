package controller

import (
	"errors"

	"labcontrol_backend/internals/features/users/admins/dto"
	adminModel "labcontrol_backend/internals/features/users/admins/model"
	authModel "labcontrol_backend/internals/features/users/auth/model"
	authService "labcontrol_backend/internals/features/users/auth/service"
	userModel "labcontrol_backend/internals/features/users/users/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateAdmin = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// CreateAdmin promotes an existing user to admin. The user row must
// already exist; the password is stored bcrypt-hashed.
func (ctrl *AdminController) CreateAdmin(c *fiber.Ctx) error {
	var body dto.CreateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create admin")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create admin")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	var existing adminModel.AdminModel
	err := ctrl.DB.Where("admin_user_id = ?", user.UserID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "User is already an admin")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	hashed, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	admin := adminModel.AdminModel{
		AdminUserID:   user.UserID,
		AdminPassword: hashed,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create admin")
	}
	return helper.JsonCreated(c, admin)
}

func (ctrl *AdminController) ListAdmins(c *fiber.Ctx) error {
	var admins []dto.AdminWithUser
	err := ctrl.DB.
		Table("admins").
		Select(`admins.admin_id   AS admin_id,
			users.user_id          AS user_id,
			users.user_rut         AS rut,
			users.user_email       AS email,
			users.user_name        AS name,
			users.user_last_name   AS last_name,
			admins.created_at      AS created_at`).
		Joins("JOIN users ON users.user_id = admins.admin_user_id").
		Order("admins.created_at ASC").
		Scan(&admins).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}
	return helper.JsonOK(c, admins)
}

// DeleteAdminByEmail revokes dashboard access. Live tokens for the admin
// are removed in the same transaction; the user row itself stays.
func (ctrl *AdminController) DeleteAdminByEmail(c *fiber.Ctx) error {
	var body dto.DeleteAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to delete admin")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to delete admin")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.Where("admin_user_id = ?", user.UserID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token_admin_id = ?", admin.AdminID).
			Delete(&authModel.TokenModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&admin).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	return helper.JsonOK(c, fiber.Map{"message": "Admin deleted successfully"})
}
