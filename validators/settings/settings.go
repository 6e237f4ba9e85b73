package settingsValidator

import (
	"spotapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SettingsUpdate holds the partial update body for the settings singleton.
type SettingsUpdate struct {
	CompanyName  *string           `json:"companyName"`
	LogoURL      *string           `json:"logoUrl"`
	ContactEmail *string           `json:"contactEmail"`
	ContactPhone *string           `json:"contactPhone"`
	Address      *string           `json:"address"`
	SocialLinks  map[string]string `json:"socialLinks"`
	IsActive     *bool             `json:"isActive"`
}

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SettingsUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.ContactEmail != nil && *reqData.ContactEmail != "" {
			if err := validate.Var(*reqData.ContactEmail, "email"); err != nil {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"contactEmail": "A valid email is required!",
				})
			}
		}

		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}
