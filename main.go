package main

import (
	"log"

	"spotapi/config"
	"spotapi/database"
	adminRoutes "spotapi/routers/adminRoutes"
	authRoutes "spotapi/routers/authRoutes"
	contactRoutes "spotapi/routers/contactRoutes"
	courseRoutes "spotapi/routers/courseRoutes"
	enrollmentRoutes "spotapi/routers/enrollmentRoutes"
	paymentRoutes "spotapi/routers/paymentRoutes"
	reviewRoutes "spotapi/routers/reviewRoutes"
	settingsRoutes "spotapi/routers/settingsRoutes"
	uploadRoutes "spotapi/routers/uploadRoutes"
	userRoutes "spotapi/routers/userRoutes"
	"spotapi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	utils.InitializePaymentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
