package contactRoutes

import (
	contactController "spotapi/controllers/contact"
	"spotapi/middleware"
	contactValidator "spotapi/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	contactGroup := app.Group("/api/contacts")

	contactGroup.Post("/", contactValidator.CreateContact(), contactController.CreateContact)

	contactGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly,
		contactController.GetAllContacts)
	contactGroup.Put("/:id/read", middleware.JWTMiddleware, middleware.AdminOnly,
		contactValidator.ContactID(), contactController.MarkRead)
	contactGroup.Put("/:id/replied", middleware.JWTMiddleware, middleware.AdminOnly,
		contactValidator.ContactID(), contactController.MarkReplied)
	contactGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly,
		contactValidator.ContactID(), contactController.DeleteContact)
}
