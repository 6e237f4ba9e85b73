package userRoutes

import (
	userController "spotapi/controllers/user"
	"spotapi/middleware"
	userValidator "spotapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the admin user directory routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware, middleware.AdminOnly)

	userGroup.Get("/", userController.GetAllUsers)
	userGroup.Get("/recent", userValidator.RecentList(10), userController.GetRecentUsers)
	userGroup.Get("/stats/total", userController.GetTotalUsers)
	userGroup.Get("/:id", userValidator.UserID(), userController.GetUserByID)
	userGroup.Put("/:id/role", userValidator.UserID(), userValidator.RoleUpdate(), userController.UpdateUserRole)
	userGroup.Delete("/:id", userValidator.UserID(), userController.DeleteUser)
}
