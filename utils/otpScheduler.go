package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
)

// InitializeOTPScheduler starts the daily sweep of stale OTP records
func InitializeOTPScheduler() {
	log.Println("[OTP-SCHEDULER] Initializing OTP cleanup scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[OTP-SCHEDULER] Running daily OTP cleanup...")
		PurgeStaleOTPs()
	})

	c.Start()
	log.Println("[OTP-SCHEDULER] OTP scheduler started - runs daily at 3 AM")
}

// PurgeStaleOTPs deletes OTP rows that are used or past expiry
func PurgeStaleOTPs() {
	db := database.Database.Db
	now := time.Now()

	result := db.
		Where("is_used = ? OR expires_at < ?", true, now).
		Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("[OTP-SCHEDULER] Error purging OTP records: %v", result.Error)
		return
	}

	log.Printf("[OTP-SCHEDULER] Purged %d stale OTP records", result.RowsAffected)
}
