package route

import (
	"labcontrol_backend/internals/configs"
	"labcontrol_backend/internals/features/lab/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, cfg configs.LabConfig) {
	ctrl := controller.NewAttendanceController(db, cfg)

	attendance := api.Group("/attendance")
	attendance.Post("/check-in-user", ctrl.CheckIn)
	attendance.Post("/check-out-user", ctrl.CheckOut)
	attendance.Get("/list-active-users", ctrl.ListActiveUsers)
	attendance.Get("/list-inactive-users", ctrl.ListInactiveUsers)
	attendance.Get("/list-all-users", ctrl.ListAllUsers)
	attendance.Get("/top-users", ctrl.TopUsers)
	attendance.Get("/lab-utilization", ctrl.LabUtilization)
	attendance.Get("/hourly-utilization", ctrl.HourlyUtilization)
	attendance.Get("/monthly-utilization", ctrl.MonthlyUtilization)
}
