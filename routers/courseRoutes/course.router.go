package courseRoutes

import (
	courseController "spotapi/controllers/course"
	"spotapi/middleware"
	courseValidator "spotapi/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the catalog routes; reads are public, writes admin-only
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", courseController.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), courseController.GetCourseByID)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly,
		courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly,
		courseValidator.CourseID(), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly,
		courseValidator.CourseID(), courseController.DeleteCourse)
}
