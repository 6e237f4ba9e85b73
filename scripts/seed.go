package main

import (
	"log"

	"spotapi/config"
	"spotapi/database"
	"spotapi/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the admin account, sample users, the course catalog, a few approved
// reviews and the settings row. Safe to run repeatedly.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{Name: "Admin User", Email: "admin@spottrading.com", Password: string(hashed), Role: "admin"},
		{Name: "John Doe", Email: "john@example.com", Password: string(hashed), Role: "user"},
		{Name: "Jane Smith", Email: "jane@example.com", Password: string(hashed), Role: "user"},
		{Name: "Bob Wilson", Email: "bob@example.com", Password: string(hashed), Role: "user"},
	}
	for _, u := range users {
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
		log.Printf("Seeded user %s", u.Email)
	}

	var courseCount int64
	db.Model(&models.Course{}).Count(&courseCount)
	if courseCount == 0 {
		courses := []models.Course{
			{
				Title:       "Advanced Technical Analysis",
				Description: "Master the art of technical analysis with advanced indicators and chart patterns.",
				Price:       299,
				Duration:    "8 weeks",
				Level:       "Advanced",
				Instructor:  "John Smith",
			},
			{
				Title:       "Forex Trading Mastery",
				Description: "Learn professional forex trading strategies and risk management techniques.",
				Price:       399,
				Duration:    "12 weeks",
				Level:       "Intermediate",
				Instructor:  "Sarah Johnson",
			},
			{
				Title:       "Cryptocurrency Trading",
				Description: "Navigate the crypto markets with confidence and understanding.",
				Price:       249,
				Duration:    "6 weeks",
				Level:       "Beginner",
				Instructor:  "Mike Chen",
			},
		}
		if err := db.Create(&courses).Error; err != nil {
			log.Fatalf("Failed to seed courses: %v", err)
		}
		log.Printf("Seeded %d courses", len(courses))
	}

	var reviewCount int64
	db.Model(&models.Review{}).Count(&reviewCount)
	if reviewCount == 0 {
		reviews := []models.Review{
			{
				Name:       "Rahul Sharma",
				Role:       "Retail Trader",
				Rating:     5,
				Review:     "The technical analysis course completely changed how I read charts.",
				Course:     "Advanced Technical Analysis",
				IsApproved: true,
			},
			{
				Name:       "Priya Patel",
				Role:       "Student",
				Rating:     4,
				Review:     "Clear explanations and practical examples throughout.",
				Course:     "Forex Trading Mastery",
				IsApproved: true,
			},
		}
		if err := db.Create(&reviews).Error; err != nil {
			log.Fatalf("Failed to seed reviews: %v", err)
		}
		log.Printf("Seeded %d reviews", len(reviews))
	}

	settings := models.Settings{
		Model:       gorm.Model{ID: models.SettingsID},
		CompanyName: models.DefaultCompanyName,
		IsActive:    true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error; err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	log.Println("Seeding completed.")
}
