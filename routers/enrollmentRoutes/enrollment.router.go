package enrollmentRoutes

import (
	enrollmentController "spotapi/controllers/enrollment"
	"spotapi/middleware"
	enrollmentValidator "spotapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/api/enrollments")

	enrollGroup.Get("/my", middleware.JWTMiddleware, enrollmentController.GetMyEnrollments)
	enrollGroup.Post("/", middleware.JWTMiddleware,
		enrollmentValidator.CreateEnrollment(), enrollmentController.CreateEnrollment)

	enrollGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly,
		enrollmentController.GetAllEnrollments)
	enrollGroup.Get("/recent", middleware.JWTMiddleware, middleware.AdminOnly,
		enrollmentValidator.RecentList(5), enrollmentController.GetRecentEnrollments)
	enrollGroup.Get("/stats/total", middleware.JWTMiddleware, middleware.AdminOnly,
		enrollmentController.GetTotalEnrollments)
	enrollGroup.Get("/course/:courseId", middleware.JWTMiddleware, middleware.AdminOnly,
		enrollmentValidator.CourseIDParam(), enrollmentController.GetEnrollmentsByCourse)
	enrollGroup.Put("/:id/status", middleware.JWTMiddleware, middleware.AdminOnly,
		enrollmentValidator.StatusUpdate(), enrollmentController.UpdateEnrollmentStatus)
}
