package paymentController

import (
	"errors"
	"log"

	"spotapi/config"
	enrollmentController "spotapi/controllers/enrollment"
	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"
	"spotapi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitiatePayment opens a UPI checkout for a course. The returned deep link
// is what the client redirects to; the payment stays pending until the
// confirm call comes back.
func InitiatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		CourseID uint   `json:"courseId"`
		UPIApp   string `json:"upiApp"`
		VPA      string `json:"vpa"`
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

	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND status <> ?",
		userID, course.ID, models.EnrollmentCancelled).First(&existing).Error
	if err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	vpa := reqData.VPA
	if vpa == "" {
		vpa = config.AppConfig.UPIMerchantVPA
	}

	payment := models.CoursePayment{
		OrderRef: uuid.NewString(),
		UserID:   userID,
		CourseID: course.ID,
		Amount:   course.Price,
		Currency: "INR",
		UPIApp:   reqData.UPIApp,
		VPA:      vpa,
		Status:   models.PaymentPending,
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	deepLink := utils.BuildUPIDeepLink(payment.UPIApp, payment.VPA, payment.Amount, "Course Purchase")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment":  payment,
		"deepLink": deepLink,
	})
}

// GetPaymentQR renders the UPI payment QR for a pending checkout.
func GetPaymentQR(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	orderRef := c.Locals("orderRefParam").(string)

	var payment models.CoursePayment
	err := database.Database.Db.Where("order_ref = ? AND user_id = ?", orderRef, userID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Payment not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	upiURL := utils.BuildUPIDeepLink("bhim", payment.VPA, payment.Amount, "Course Purchase")
	png, err := utils.FetchQRCode(upiURL)
	if err != nil {
		log.Printf("Error fetching QR code: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// ConfirmPayment settles a pending checkout. With no gateway configured the
// platform accepts the confirmation as-is (simulated mode); this is the mock
// UPI flow made explicit, not a verified settlement. Settlement is one
// transaction: the payment completes, the enrollment is created with its
// snapshots, and the course joins the user's purchased set, all or nothing.
// A pending payment whose enrollment already exists (an earlier confirm that
// died between writes) still settles instead of staying stuck.
func ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	orderRef := c.Locals("orderRefParam").(string)
	db := database.Database.Db

	var payment models.CoursePayment
	err := db.Where("order_ref = ? AND user_id = ?", orderRef, userID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Payment not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Confirming a settled, failed or expired payment changes nothing.
	if payment.Status != models.PaymentPending {
		return c.JSON(payment)
	}

	verified, err := utils.VerifyGatewayPayment(payment.OrderRef)
	if err != nil {
		log.Printf("Error verifying payment %s: %v", payment.OrderRef, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	if !verified {
		if err := db.Model(&payment).Update("status", models.PaymentFailed).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Payment was not confirmed by the gateway")
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
	}

	var course models.Course
	if err := db.Where("id = ?", payment.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var enrollment *models.Enrollment
	txErr := db.Transaction(func(tx *gorm.DB) error {
		created, err := enrollmentController.EnrollUser(tx, &user, &course, user.Phone)
		if err != nil && !errors.Is(err, enrollmentController.ErrAlreadyEnrolled) {
			return err
		}
		enrollment = created
		return tx.Model(&payment).Update("status", models.PaymentCompleted).Error
	})
	if txErr != nil {
		log.Printf("Error settling payment %s: %v", payment.OrderRef, txErr)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if enrollment == nil {
		// Enrollment predates this settle; return the live one.
		var existing models.Enrollment
		err := db.Preload("Course").Where("user_id = ? AND course_id = ? AND status <> ?",
			userID, course.ID, models.EnrollmentCancelled).First(&existing).Error
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
		enrollment = &existing
	} else {
		go func(email, name, title string) {
			if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
				log.Printf("Error sending enrollment email: %v", err)
			}
		}(enrollment.UserEmail, enrollment.UserName, enrollment.CourseTitle)
	}

	return c.JSON(fiber.Map{
		"payment":    payment,
		"enrollment": enrollment,
	})
}

func GetMyPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	var payments []models.CoursePayment
	err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Course").Order("created_at desc").Find(&payments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(payments)
}

func GetAllPayments(c *fiber.Ctx) error {
	var payments []models.CoursePayment
	err := database.Database.Db.Preload("Course").Order("created_at desc").Find(&payments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(payments)
}
