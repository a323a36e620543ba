package routes

import (
	"log"

	"labcontrol_backend/internals/configs"
	attendanceRoute "labcontrol_backend/internals/features/lab/attendance/route"
	instanceRoute "labcontrol_backend/internals/features/lab/instances/route"
	reasonRoute "labcontrol_backend/internals/features/lab/reasons/route"
	adminRoute "labcontrol_backend/internals/features/users/admins/route"
	authRoute "labcontrol_backend/internals/features/users/auth/route"
	careerRoute "labcontrol_backend/internals/features/users/careers/route"
	roleRoute "labcontrol_backend/internals/features/users/roles/route"
	userRoute "labcontrol_backend/internals/features/users/users/route"
	"labcontrol_backend/internals/middlewares"
	authMiddleware "labcontrol_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts the whole API under /api. Login is public (behind
// its own limiter); everything else sits behind the JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	lab := configs.Lab()

	log.Println("[INFO] Setting up public auth routes...")
	public := app.Group("/api", middlewares.LoginRateLimiter())
	authRoute.AuthRoutes(public, db)

	log.Println("[INFO] Setting up protected API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	adminRoute.AdminRoutes(api, db)
	roleRoute.RoleRoutes(api, db)
	careerRoute.CareerRoutes(api, db)
	reasonRoute.ReasonRoutes(api, db)
	instanceRoute.InstanceRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db, lab)
}
