package paymentValidator

import (
	"strings"

	"spotapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func InitiatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint   `json:"courseId"`
			UPIApp   string `json:"upiApp"`
			VPA      string `json:"vpa"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		if reqData.UPIApp == "" {
			reqData.UPIApp = "bhim"
		}
		if err := validate.Var(reqData.UPIApp, "oneof=gpay phonepe paytm amazonpay bhim"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid UPI app")
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// OrderRef validates the :orderRef route parameter (a UUID).
func OrderRef() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref := strings.TrimSpace(c.Params("orderRef"))
		if err := validate.Var(ref, "required,uuid4"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order reference")
		}

		c.Locals("orderRefParam", ref)
		return c.Next()
	}
}
