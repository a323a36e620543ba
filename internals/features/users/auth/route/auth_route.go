package route

import (
	"labcontrol_backend/internals/features/users/auth/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts the login endpoints. These stay outside the auth
// middleware; the rate limiter applied by the caller is the only guard.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", ctrl.Login)
	api.Post("/login/logout", ctrl.Logout)
}
