package settingsRoutes

import (
	settingsController "spotapi/controllers/settings"
	"spotapi/middleware"
	settingsValidator "spotapi/validators/settings"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	settingsGroup := app.Group("/api/settings")

	settingsGroup.Get("/", settingsController.GetSettings)
	settingsGroup.Put("/", middleware.JWTMiddleware, middleware.AdminOnly,
		settingsValidator.UpdateSettings(), settingsController.UpdateSettings)
}
