package authRoutes

import (
	authController "spotapi/controllers/auth"
	"spotapi/middleware"
	authValidator "spotapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.GetMe)
	authGroup.Put("/me", middleware.JWTMiddleware, authValidator.UpdateProfile(), authController.UpdateProfile)
}
