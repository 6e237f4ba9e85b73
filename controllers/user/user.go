package userController

import (
	"errors"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	err := database.Database.Db.Order("created_at desc").Find(&users).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(users)
}

func GetRecentUsers(c *fiber.Ctx) error {
	limit, ok := c.Locals("validatedLimit").(int)
	if !ok {
		limit = 10
	}

	var users []models.User
	err := database.Database.Db.Order("created_at desc").Limit(limit).Find(&users).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(users)
}

func GetUserByID(c *fiber.Ctx) error {
	id := c.Locals("userIDParam").(uint)

	var user models.User
	err := database.Database.Db.Preload("PurchasedCourses").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(user)
}

func UpdateUserRole(c *fiber.Ctx) error {
	id := c.Locals("userIDParam").(uint)
	role := c.Locals("validatedRole").(string)

	var user models.User
	err := database.Database.Db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Model(&user).Update("role", role).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(user)
}

// DeleteUser removes the account permanently, along with its purchased-set
// join rows. Their enrollments keep the snapshot fields, so history stays
// readable.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Locals("userIDParam").(uint)

	var user models.User
	err := database.Database.Db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Select("PurchasedCourses").Unscoped().Delete(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func GetTotalUsers(c *fiber.Ctx) error {
	var total int64
	err := database.Database.Db.Model(&models.User{}).Count(&total).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"total": total})
}
