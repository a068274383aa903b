package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"fikrislam_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar (urutan penting: recover paling awal)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
