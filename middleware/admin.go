package middleware

import (
	"spotapi/database"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminOnly checks that the authenticated user has the admin role.
// Must run after JWTMiddleware; stores the loaded user in c.Locals("currentUser").
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	var user models.User
	err := database.Database.Db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
		}
		return ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if user.Role != "admin" {
		return ErrorResponse(c, fiber.StatusForbidden, "Access denied. Admin only.")
	}

	c.Locals("currentUser", &user)
	return c.Next()
}
