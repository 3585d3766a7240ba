package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"casual-jobs-connect/internal/services"
)

// ExpiryJob periodically reconciles job post statuses so listings stay
// consistent even when nobody is browsing. The same transitions also run
// inline on detail reads; this sweep is the out-of-band backstop.
type ExpiryJob struct {
	db      *gorm.DB
	service *services.JobService
}

// NewExpiryJob creates a new ExpiryJob
func NewExpiryJob(db *gorm.DB) *ExpiryJob {
	return &ExpiryJob{
		db:      db,
		service: services.NewJobService(db),
	}
}

// Start begins the periodic sweep
func (j *ExpiryJob) Start(interval time.Duration) {
	go func() {
		// Run immediately on start
		j.runOnce()

		// Then run periodically
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			j.runOnce()
		}
	}()
}

func (j *ExpiryJob) runOnce() {
	now := time.Now()

	closed, err := j.service.CloseExpired(now)
	if err != nil {
		log.Printf("Expiry sweep error: %v", err)
	}
	expired, err := j.service.MarkExpired(now)
	if err != nil {
		log.Printf("Expiry sweep error: %v", err)
	}

	if closed > 0 || expired > 0 {
		log.Printf("Expiry sweep: closed %d, expired %d job posts", closed, expired)
	}
}
