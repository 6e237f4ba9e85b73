package reviewRoutes

import (
	reviewController "spotapi/controllers/review"
	"spotapi/middleware"
	reviewValidator "spotapi/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/api/reviews")

	// Public listing only ever shows approved reviews
	reviewGroup.Get("/", reviewController.GetApprovedReviews)
	reviewGroup.Post("/", middleware.JWTMiddleware, reviewValidator.CreateReview(), reviewController.CreateReview)

	reviewGroup.Get("/admin/all", middleware.JWTMiddleware, middleware.AdminOnly,
		reviewController.GetAllReviews)
	reviewGroup.Put("/:id/approve", middleware.JWTMiddleware, middleware.AdminOnly,
		reviewValidator.ReviewID(), reviewController.ApproveReview)
	reviewGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly,
		reviewValidator.ReviewID(), reviewValidator.UpdateReview(), reviewController.UpdateReview)
	reviewGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly,
		reviewValidator.ReviewID(), reviewController.DeleteReview)
}
