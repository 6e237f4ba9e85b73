package userValidator

import (
	"strconv"
	"strings"

	"spotapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UserID validates the :id route parameter.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
		}

		c.Locals("userIDParam", uint(id))
		return c.Next()
	}
}

// RoleUpdate validates the role change body; only user and admin exist.
func RoleUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Var(reqData.Role, "required,oneof=user admin"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role")
		}

		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}

// RecentList validates the optional ?limit query parameter.
func RecentList(defaultLimit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Limit must be greater than 0")
			}
			limit = parsed
		}

		c.Locals("validatedLimit", limit)
		return c.Next()
	}
}
