package route

import (
	"labcontrol_backend/internals/features/lab/reasons/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReasonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReasonController(db)

	reasons := api.Group("/reasons")
	reasons.Post("/", ctrl.CreateReason)
	reasons.Get("/", ctrl.ListReasons)
	reasons.Delete("/", ctrl.DeleteReasonByName)
}
