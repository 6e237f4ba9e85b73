package adminRoutes

import (
	adminController "spotapi/controllers/admin"
	"spotapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	dashGroup := app.Group("/api/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)

	dashGroup.Get("/stats", adminController.DashboardStats)
}
