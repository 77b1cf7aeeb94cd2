package utils

import (
	"log"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeAbandonedDrafts hard-deletes draft reports that were soft-deleted and
// have not been touched within the retention window.
func purgeAbandonedDrafts() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.DraftRetentionDays)

	result := db.Unscoped().
		Where("status = ? AND deleted_at IS NOT NULL AND updated_at < ?", models.StatusDraft, cutoff).
		Delete(&models.Report{})
	if result.Error != nil {
		logScheduler("Error purging abandoned drafts: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged abandoned draft reports")
	}
}

// purgeDeactivatedLibraryItems hard-deletes action library rows that were
// deactivated and left untouched past the retention window. Reports keep their
// snapshot texts, so nothing printed ever changes.
func purgeDeactivatedLibraryItems() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.LibraryRetentionDays)

	result := db.Unscoped().
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Delete(&models.ActionLibraryItem{})
	if result.Error != nil {
		logScheduler("Error purging deactivated library items: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged deactivated action library items")
	}
}

// StartCleanupScheduler runs retention cleanup nightly at 03:00
func StartCleanupScheduler(c *cron.Cron) {
	c.AddFunc("0 3 * * *", func() {
		purgeAbandonedDrafts()
		purgeDeactivatedLibraryItems()
	})
	logScheduler("Cleanup scheduler started - runs nightly at 03:00")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		loc = time.FixedZone("TRT", 3*60*60)
	}

	c := cron.New(cron.WithLocation(loc))

	StartCleanupScheduler(c)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
