package enrollmentValidator

import (
	"strconv"
	"strings"

	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
)

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID  uint   `json:"courseId"`
			UserName  string `json:"userName"`
			UserEmail string `json:"userEmail"`
			UserPhone string `json:"userPhone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// StatusUpdate validates the :id parameter and the target status. Only the
// three known statuses are accepted; anything else is rejected before any
// lookup happens.
func StatusUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enrollment ID")
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if !models.ValidEnrollmentStatus(reqData.Status) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status")
		}

		c.Locals("enrollmentIDParam", uint(id))
		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// CourseIDParam validates the :courseId route parameter.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("courseId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course ID")
		}

		c.Locals("courseIDParam", uint(id))
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
