package contactController

import (
	"errors"
	"log"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"
	"spotapi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateContact stores an inbound message from the public contact form.
func CreateContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	contact := models.Contact{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Phone:   reqData.Phone,
		Message: reqData.Message,
		Status:  models.ContactUnread,
	}

	if err := database.Database.Db.Create(&contact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	go func(name, email, message string) {
		if err := utils.SendContactNotification(name, email, message); err != nil {
			log.Printf("Error sending contact notification: %v", err)
		}
	}(contact.Name, contact.Email, contact.Message)

	return c.Status(fiber.StatusCreated).JSON(contact)
}

func GetAllContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	err := database.Database.Db.Order("created_at desc").Find(&contacts).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(contacts)
}

func MarkRead(c *fiber.Ctx) error {
	return setStatus(c, models.ContactRead)
}

func MarkReplied(c *fiber.Ctx) error {
	return setStatus(c, models.ContactReplied)
}

func setStatus(c *fiber.Ctx, status string) error {
	id := c.Locals("contactIDParam").(uint)

	var contact models.Contact
	err := database.Database.Db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Contact message not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Model(&contact).Update("status", status).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(contact)
}

func DeleteContact(c *fiber.Ctx) error {
	id := c.Locals("contactIDParam").(uint)

	var contact models.Contact
	err := database.Database.Db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Contact message not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := database.Database.Db.Unscoped().Delete(&contact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Contact message deleted successfully"})
}
