package utils

import (
	"log"
	"time"

	"spotapi/config"
	"spotapi/database"
	"spotapi/models"

	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler starts the pending-payment expiry sweep.
// A checkout that never comes back to confirm would otherwise stay pending
// forever; the sweep moves it to expired after the configured window.
func InitializePaymentScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("*/10 * * * *", func() {
		ExpireStalePayments()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment expiry sweep started - runs every 10 minutes")
	return c
}

// ExpireStalePayments marks pending payments older than the expiry window as expired.
func ExpireStalePayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.PaymentExpiryMin) * time.Minute)

	result := db.Model(&models.CoursePayment{}).
		Where("status = ? AND created_at < ?", models.PaymentPending, cutoff).
		Update("status", models.PaymentExpired)

	if result.Error != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error expiring stale payments: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[PAYMENT-SCHEDULER] Expired %d stale payments", result.RowsAffected)
	}
}
