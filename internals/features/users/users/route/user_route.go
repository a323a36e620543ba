package route

import (
	"labcontrol_backend/internals/features/users/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.ListUsers)
	users.Delete("/", ctrl.DeleteUserByEmail)
}
