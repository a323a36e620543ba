package route

import (
	"labcontrol_backend/internals/features/users/admins/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	admins := api.Group("/admins")
	admins.Post("/", ctrl.CreateAdmin)
	admins.Get("/", ctrl.ListAdmins)
	admins.Delete("/", ctrl.DeleteAdminByEmail)
}
