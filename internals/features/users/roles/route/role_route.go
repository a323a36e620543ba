package route

import (
	"labcontrol_backend/internals/features/users/roles/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RoleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoleController(db)

	roles := api.Group("/roles")
	roles.Post("/", ctrl.CreateRole)
	roles.Get("/", ctrl.ListRoles)
	roles.Delete("/", ctrl.DeleteRoleByName)
}
