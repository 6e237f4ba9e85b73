package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP App Password

	UPIMerchantVPA   string // Fallback merchant VPA for UPI deep links
	UPIGatewayURL    string // Optional gateway status endpoint; empty means simulated confirmations
	QRServiceURL     string // QR code rendering service
	PaymentExpiryMin int    // Minutes before a pending payment is swept to EXPIRED
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		UPIMerchantVPA:   getEnv("UPI_MERCHANT_VPA", "merchant@okhdfcbank"),
		UPIGatewayURL:    getEnv("UPI_GATEWAY_URL", ""),
		QRServiceURL:     getEnv("QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
		PaymentExpiryMin: getEnvInt("PAYMENT_EXPIRY_MINUTES", 60),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
