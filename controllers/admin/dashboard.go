package adminController

import (
	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the numbers the admin landing page shows.
// Revenue joins enrollments against the course's *current* price, so a
// repricing shifts historical totals; the per-enrollment PricePaid snapshot
// exists for anyone who needs the stable figure.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalEnrollments, activeEnrollments int64
	var pendingReviews, unreadContacts int64

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := db.Model(&models.Enrollment{}).Count(&totalEnrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentActive).
		Count(&activeEnrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := db.Model(&models.Review{}).Where("is_approved = ?", false).
		Count(&pendingReviews).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := db.Model(&models.Contact{}).Where("status = ?", models.ContactUnread).
		Count(&unreadContacts).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var totalRevenue float64
	err := db.Table("enrollments").
		Joins("JOIN courses ON courses.id = enrollments.course_id AND courses.deleted_at IS NULL").
		Where("enrollments.deleted_at IS NULL").
		Select("COALESCE(SUM(courses.price), 0)").
		Scan(&totalRevenue).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"totalUsers":        totalUsers,
		"totalCourses":      totalCourses,
		"totalEnrollments":  totalEnrollments,
		"activeEnrollments": activeEnrollments,
		"pendingReviews":    pendingReviews,
		"unreadContacts":    unreadContacts,
		"totalRevenue":      totalRevenue,
	})
}
