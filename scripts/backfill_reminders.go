//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/services"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Backfills reminders for events that have none, e.g. after a reminder insert
// failed at event creation time.
// Usage: go run scripts/backfill_reminders.go [--dry-run]

func main() {
	dryRun := false
	for _, arg := range os.Args[1:] {
		if arg == "--dry-run" {
			dryRun = true
		}
	}

	if dryRun {
		log.Println("=== DRY RUN MODE - No changes will be made ===")
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		envOr("DB_HOST", "localhost"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		envOr("DB_PORT", "5432"),
		os.Getenv("DB_SSL_MODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var events []model.Event
	if err := db.Order("id ASC").Find(&events).Error; err != nil {
		log.Fatalf("Failed to load events: %v", err)
	}

	created := 0
	for i := range events {
		event := &events[i]

		expected := "Reminder: " + event.Title
		var count int64
		err := db.Model(&model.Reminder{}).
			Where("title = ? AND start = ?", expected, event.Start.AddDate(0, 0, -1)).
			Count(&count).Error
		if err != nil {
			log.Fatalf("Failed to check reminders for event %d: %v", event.ID, err)
		}
		if count > 0 {
			continue
		}

		reminder, err := services.BuildReminder(event)
		if err != nil {
			log.Printf("Skipping event %d: %v", event.ID, err)
			continue
		}

		if dryRun {
			log.Printf("[dry-run] would create reminder %q for event %d", reminder.Title, event.ID)
			created++
			continue
		}

		if err := db.Create(&reminder).Error; err != nil {
			log.Fatalf("Failed to create reminder for event %d: %v", event.ID, err)
		}
		log.Printf("Created reminder %q for event %d", reminder.Title, event.ID)
		created++
	}

	log.Printf("Done. %d reminders backfilled (%d events scanned)", created, len(events))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
