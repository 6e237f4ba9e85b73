package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"spotapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// ConnectTestDb opens an in-memory SQLite database with the same schema.
// Used by the test suite; the uniqueness guarantees below hold there too.
func ConnectTestDb() {
	// Unique name per open so test packages never share state; cache=shared
	// keeps the pool's connections on the same in-memory database.
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Review{},
		&models.Contact{},
		&models.Settings{},
		&models.CoursePayment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// One live enrollment per (user, course). Cancelled enrollments drop out
	// of the index so the user can buy the course again; concurrent identical
	// requests lose the race at the database, not at the pre-check.
	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_live
		 ON enrollments (user_id, course_id)
		 WHERE status <> 'cancelled' AND deleted_at IS NULL`,
	).Error
	if err != nil {
		log.Fatalf("Migration failed creating enrollment index: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
