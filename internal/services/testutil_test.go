package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"casual-jobs-connect/internal/models"
)

var seq int

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserProfile{},
		&models.JobCategory{},
		&models.JobPost{},
		&models.JobApplication{},
		&models.Complaint{},
		&models.AdminActivity{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	seq++

	user := models.User{
		Username:     fmt.Sprintf("user%d", seq),
		Email:        fmt.Sprintf("user%d@example.com", seq),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createCategory(t *testing.T, db *gorm.DB) *models.JobCategory {
	t.Helper()
	seq++

	category := models.JobCategory{
		Name:     fmt.Sprintf("Category %d", seq),
		IsActive: true,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return &category
}

// createJob persists a job post with sane defaults: hourly 50000 VND,
// 08:00-12:00 shift on the given date.
func createJob(t *testing.T, db *gorm.DB, employerID, categoryID uint, status models.JobStatus, workDate time.Time) *models.JobPost {
	t.Helper()
	seq++

	job := models.JobPost{
		Title:           fmt.Sprintf("Job %d", seq),
		Description:     "Test shift",
		EmployerID:      employerID,
		CategoryID:      categoryID,
		Location:        "Hà Nội",
		WorkDate:        datatypes.Date(workDate),
		WorkTimeStart:   "08:00",
		WorkTimeEnd:     "12:00",
		PaymentType:     models.PaymentHourly,
		PaymentAmount:   decimal.NewFromInt(50000),
		NumberOfWorkers: 1,
		Status:          status,
		Priority:        models.PriorityNormal,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	return &job
}

func actorFor(user *models.User) Actor {
	return Actor{ID: user.ID, Role: user.Role}
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
