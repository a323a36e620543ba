package middlewares

import (
	"os"
	"strings"

	"labcontrol_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the app-wide middleware chain. Order
// matters: recovery first so panics in later handlers are caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

func getenvRaw(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
