package controller

import (
	"errors"

	adminModel "labcontrol_backend/internals/features/users/admins/model"
	authModel "labcontrol_backend/internals/features/users/auth/model"
	"labcontrol_backend/internals/features/users/users/dto"
	"labcontrol_backend/internals/features/users/users/model"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create user")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create user")
	}

	var existing model.UserModel
	err := ctrl.DB.Where("user_email = ?", body.Email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.UserModel{
		UserRut:      body.Rut,
		UserEmail:    body.Email,
		UserName:     body.Name,
		UserLastName: body.Lastname,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to create user")
	}
	return helper.JsonCreated(c, user)
}

func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonOK(c, users)
}

// DeleteUserByEmail removes a user together with any admin account and
// live tokens they hold. Attendance history is kept (append-only).
func (ctrl *UserController) DeleteUserByEmail(c *fiber.Ctx) error {
	var body dto.DeleteUserRequest
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email is required")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var admin adminModel.AdminModel
		err := tx.Where("admin_user_id = ?", user.UserID).First(&admin).Error
		switch {
		case err == nil:
			if err := tx.Where("token_admin_id = ?", admin.AdminID).
				Delete(&authModel.TokenModel{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&admin).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := tx.Where("user_role_user_id = ?", user.UserID).
			Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_career_user_id = ?", user.UserID).
			Delete(&model.UserCareerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "User deleted successfully")
}
