package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggermw "masjidhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan:
// recover → CORS → logger → rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggermw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
