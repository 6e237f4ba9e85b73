package courseController

import (
	"errors"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.Order("created_at desc").Find(&courses).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(courses)
}

func GetCourseByID(c *fiber.Ctx) error {
	id := c.Locals("courseIDParam").(uint)

	var course models.Course
	err := database.Database.Db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Image       string   `json:"image"`
		Instructor  string   `json:"instructor"`
		Duration    string   `json:"duration"`
		Level       string   `json:"level"`
		Category    string   `json:"category"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       *reqData.Price,
		Image:       reqData.Image,
		Instructor:  reqData.Instructor,
		Duration:    reqData.Duration,
		Level:       reqData.Level,
		Category:    reqData.Category,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id := c.Locals("courseIDParam").(uint)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Image       *string  `json:"image"`
		Instructor  *string  `json:"instructor"`
		Duration    *string  `json:"duration"`
		Level       *string  `json:"level"`
		Category    *string  `json:"category"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var course models.Course
	err := database.Database.Db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.Image != nil {
		updates["image"] = *reqData.Image
	}
	if reqData.Instructor != nil {
		updates["instructor"] = *reqData.Instructor
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&course).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	return c.JSON(course)
}

// DeleteCourse removes a course from the catalog. Existing enrollments are
// left alone; their CourseTitle snapshot keeps history readable.
func DeleteCourse(c *fiber.Ctx) error {
	id := c.Locals("courseIDParam").(uint)

	var course models.Course
	err := database.Database.Db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Unscoped().Delete(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
