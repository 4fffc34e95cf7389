package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "kursusku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar, urutan penting:
// recovery paling luar, lalu cors, request-id, baru logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
}
