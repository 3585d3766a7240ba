package main

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"casual-jobs-connect/internal/config"
	"casual-jobs-connect/internal/services"
)

// One-shot status sweep, meant to be run from cron. Performs the same
// transitions as the in-process ticker: published jobs past their work
// start close, long-closed jobs expire.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	jobService := services.NewJobService(db)
	now := time.Now()

	closed, err := jobService.CloseExpired(now)
	if err != nil {
		log.Fatalf("Failed to close expired jobs: %v", err)
	}

	expired, err := jobService.MarkExpired(now)
	if err != nil {
		log.Fatalf("Failed to expire closed jobs: %v", err)
	}

	log.Printf("Sweep complete: closed %d, expired %d job posts", closed, expired)
}
