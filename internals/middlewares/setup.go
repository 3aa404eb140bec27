package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"collegeschedule_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain; route groups add their own on top.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use("/api", GlobalRateLimiter())
}
