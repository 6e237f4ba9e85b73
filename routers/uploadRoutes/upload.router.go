package uploadRoutes

import (
	uploadController "spotapi/controllers/upload"
	"spotapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/api/uploads", middleware.JWTMiddleware, middleware.AdminOnly)

	uploadGroup.Post("/", uploadController.UploadImage)
}
