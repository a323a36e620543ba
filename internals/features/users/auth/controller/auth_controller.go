package controller

import (
	"errors"
	"log"

	adminModel "labcontrol_backend/internals/features/users/admins/model"
	"labcontrol_backend/internals/features/users/auth/dto"
	"labcontrol_backend/internals/features/users/auth/model"
	"labcontrol_backend/internals/features/users/auth/service"
	userModel "labcontrol_backend/internals/features/users/users/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login authenticates an admin by email and password. A successful login
// replaces any previous live token for that admin, so a second login
// from another browser revokes the first.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.Where("admin_user_id = ?", user.UserID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !service.CheckPassword(admin.AdminPassword, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid password")
	}

	token, expiresAt, err := service.SignAdminToken(admin.AdminID, user.UserID, user.UserEmail)
	if err != nil {
		log.Printf("[AUTH] token signing failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token_admin_id = ?", admin.AdminID).
			Delete(&model.TokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.TokenModel{
			TokenAdminID:   admin.AdminID,
			TokenValue:     token,
			TokenExpiresAt: expiresAt,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, dto.LoginResponse{
		Message:   "Login successful",
		AdminID:   admin.AdminID.String(),
		UserID:    user.UserID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout deletes the admin's live token, invalidating it server-side
// even though the JWT itself has not expired yet.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var body dto.LogoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.Where("admin_user_id = ?", user.UserID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	res := ctrl.DB.Where("token_admin_id = ?", admin.AdminID).Delete(&model.TokenModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Token not found")
	}
	return helper.JsonOK(c, fiber.Map{"message": "Logout successful"})
}
