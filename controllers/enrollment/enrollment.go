package enrollmentController

import (
	"errors"
	"log"
	"time"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"
	"spotapi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrAlreadyEnrolled is returned when a non-cancelled enrollment already
// exists for the (user, course) pair.
var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

// EnrollUser creates the enrollment with its snapshot fields and adds the
// course to the user's purchased set, in one transaction. The partial unique
// index on (user_id, course_id) makes the dedup hold under concurrent
// identical requests; the pre-check only exists for the friendly error.
func EnrollUser(db *gorm.DB, user *models.User, course *models.Course, phone string) (*models.Enrollment, error) {
	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND status <> ?",
		user.ID, course.ID, models.EnrollmentCancelled).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if phone == "" {
		phone = user.Phone
	}

	enrollment := &models.Enrollment{
		UserID:         user.ID,
		CourseID:       course.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		UserPhone:      phone,
		CourseTitle:    course.Title,
		PricePaid:      course.Price,
		EnrollmentDate: time.Now(),
		Status:         models.EnrollmentActive,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("PurchasedCourses").Append(course)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, txErr
	}

	enrollment.Course = course
	return enrollment, nil
}

func CreateEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		CourseID  uint   `json:"courseId"`
		UserName  string `json:"userName"`
		UserEmail string `json:"userEmail"`
		UserPhone string `json:"userPhone"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
	}

	var course models.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	enrollment, err := EnrollUser(db, &user, &course, reqData.UserPhone)
	if err != nil {
		if errors.Is(err, ErrAlreadyEnrolled) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	go func(email, name, title string) {
		if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(enrollment.UserEmail, enrollment.UserName, enrollment.CourseTitle)

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// GetMyEnrollments returns the authenticated user's enrollments, newest first.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Course").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(enrollments)
}

func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	err := database.Database.Db.Preload("Course").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(enrollments)
}

func GetRecentEnrollments(c *fiber.Ctx) error {
	limit, ok := c.Locals("validatedLimit").(int)
	if !ok {
		limit = 5
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.Preload("Course").Order("created_at desc").
		Limit(limit).Find(&enrollments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(enrollments)
}

func GetEnrollmentsByCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseIDParam").(uint)

	var enrollments []models.Enrollment
	err := database.Database.Db.Where("course_id = ?", courseID).
		Preload("Course").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(enrollments)
}

// UpdateEnrollmentStatus moves an enrollment through its lifecycle.
// completed and cancelled are terminal; updates against them are a no-op
// that returns the record unchanged.
func UpdateEnrollmentStatus(c *fiber.Ctx) error {
	id := c.Locals("enrollmentIDParam").(uint)
	status := c.Locals("validatedStatus").(string)

	var enrollment models.Enrollment
	err := database.Database.Db.Preload("Course").Where("id = ?", id).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if enrollment.Terminal() {
		return c.JSON(enrollment)
	}

	if err := database.Database.Db.Model(&enrollment).Update("status", status).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(enrollment)
}

func GetTotalEnrollments(c *fiber.Ctx) error {
	var total int64
	err := database.Database.Db.Model(&models.Enrollment{}).Count(&total).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"total": total})
}
