package route

import (
	"labcontrol_backend/internals/features/lab/instances/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InstanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstanceController(db)

	instances := api.Group("/instances")
	instances.Post("/", ctrl.CreateInstance)
	instances.Get("/", ctrl.ListInstances)
}
