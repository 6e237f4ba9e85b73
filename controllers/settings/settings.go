package settingsController

import (
	"encoding/json"

	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"
	settingsValidator "spotapi/validators/settings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ensureSettings inserts the singleton row if it does not exist yet.
// ON CONFLICT DO NOTHING on the fixed primary key means two concurrent
// first reads cannot both create a row.
func ensureSettings(db *gorm.DB) error {
	seed := models.Settings{
		Model:       gorm.Model{ID: models.SettingsID},
		CompanyName: models.DefaultCompanyName,
		IsActive:    true,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
}

// GetSettings returns the settings singleton, lazily creating it with
// defaults on first read.
func GetSettings(c *fiber.Ctx) error {
	db := database.Database.Db

	if err := ensureSettings(db); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var settings models.Settings
	if err := db.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(settings)
}

// UpdateSettings merges the provided fields into the singleton row,
// creating it first if needed. The fixed primary key keeps this a
// one-row table no matter how calls interleave.
func UpdateSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSettings").(*settingsValidator.SettingsUpdate)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	db := database.Database.Db

	if err := ensureSettings(db); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	updates := make(map[string]interface{})
	if reqData.CompanyName != nil {
		updates["company_name"] = *reqData.CompanyName
	}
	if reqData.LogoURL != nil {
		updates["logo_url"] = *reqData.LogoURL
	}
	if reqData.ContactEmail != nil {
		updates["contact_email"] = *reqData.ContactEmail
	}
	if reqData.ContactPhone != nil {
		updates["contact_phone"] = *reqData.ContactPhone
	}
	if reqData.Address != nil {
		updates["address"] = *reqData.Address
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}
	if reqData.SocialLinks != nil {
		raw, err := json.Marshal(reqData.SocialLinks)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid social links")
		}
		updates["social_links"] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		err := db.Model(&models.Settings{}).Where("id = ?", models.SettingsID).Updates(updates).Error
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	var settings models.Settings
	if err := db.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(settings)
}
