package route

import (
	"labcontrol_backend/internals/features/users/careers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CareerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCareerController(db)

	careers := api.Group("/careers")
	careers.Post("/", ctrl.CreateCareer)
	careers.Get("/", ctrl.ListCareers)
	careers.Delete("/", ctrl.DeleteCareerByName)
}
