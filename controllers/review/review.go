package reviewController

import (
	"errors"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetApprovedReviews is the public listing; unapproved reviews never appear here.
func GetApprovedReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	err := database.Database.Db.Where("is_approved = ?", true).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(reviews)
}

// CreateReview stores a new review pending approval. isApproved in the
// request body is ignored; only an admin can publish.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Name   string `json:"name"`
		Role   string `json:"role"`
		Rating int    `json:"rating"`
		Review string `json:"review"`
		Course string `json:"course"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	review := models.Review{
		UserID:     userID,
		Name:       reqData.Name,
		Role:       reqData.Role,
		Rating:     reqData.Rating,
		Review:     reqData.Review,
		Course:     reqData.Course,
		IsApproved: false,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func GetAllReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	err := database.Database.Db.Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(reviews)
}

func UpdateReview(c *fiber.Ctx) error {
	id := c.Locals("reviewIDParam").(uint)

	reqData, ok := c.Locals("validatedReviewUpdate").(*struct {
		Name       *string `json:"name"`
		Role       *string `json:"role"`
		Rating     *int    `json:"rating"`
		Review     *string `json:"review"`
		Course     *string `json:"course"`
		IsApproved *bool   `json:"isApproved"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var review models.Review
	err := database.Database.Db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	updates := make(map[string]interface{})
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Role != nil {
		updates["role"] = *reqData.Role
	}
	if reqData.Rating != nil {
		updates["rating"] = *reqData.Rating
	}
	if reqData.Review != nil {
		updates["review"] = *reqData.Review
	}
	if reqData.Course != nil {
		updates["course"] = *reqData.Course
	}
	if reqData.IsApproved != nil {
		updates["is_approved"] = *reqData.IsApproved
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&review).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	return c.JSON(review)
}

func ApproveReview(c *fiber.Ctx) error {
	id := c.Locals("reviewIDParam").(uint)

	var review models.Review
	err := database.Database.Db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Model(&review).Update("is_approved", true).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(review)
}

func DeleteReview(c *fiber.Ctx) error {
	id := c.Locals("reviewIDParam").(uint)

	var review models.Review
	err := database.Database.Db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Unscoped().Delete(&review).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
