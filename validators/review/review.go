package reviewValidator

import (
	"strconv"
	"strings"

	"spotapi/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReviewID validates the :id route parameter.
func ReviewID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
		}

		c.Locals("reviewIDParam", uint(id))
		return c.Next()
	}
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   string `json:"name"`
			Role   string `json:"role"`
			Rating int    `json:"rating"`
			Review string `json:"review"`
			Course string `json:"course"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if strings.TrimSpace(reqData.Role) == "" {
			errors["role"] = "Role is required!"
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if strings.TrimSpace(reqData.Review) == "" {
			errors["review"] = "Review text is required!"
		}

		if strings.TrimSpace(reqData.Course) == "" {
			errors["course"] = "Course is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name       *string `json:"name"`
			Role       *string `json:"role"`
			Rating     *int    `json:"rating"`
			Review     *string `json:"review"`
			Course     *string `json:"course"`
			IsApproved *bool   `json:"isApproved"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Rating != nil && (*reqData.Rating < 1 || *reqData.Rating > 5) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"rating": "Rating must be between 1 and 5!",
			})
		}

		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}
