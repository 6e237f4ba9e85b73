package paymentRoutes

import (
	paymentController "spotapi/controllers/payment"
	"spotapi/middleware"
	paymentValidator "spotapi/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/initiate", middleware.JWTMiddleware,
		paymentValidator.InitiatePayment(), paymentController.InitiatePayment)
	paymentGroup.Get("/my", middleware.JWTMiddleware, paymentController.GetMyPayments)
	paymentGroup.Get("/:orderRef/qr", middleware.JWTMiddleware,
		paymentValidator.OrderRef(), paymentController.GetPaymentQR)
	paymentGroup.Post("/:orderRef/confirm", middleware.JWTMiddleware,
		paymentValidator.OrderRef(), paymentController.ConfirmPayment)

	paymentGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly,
		paymentController.GetAllPayments)
}
