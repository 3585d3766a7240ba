package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobStatus is the job post lifecycle state
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
	JobStatusExpired   JobStatus = "expired"
)

// Valid reports whether s is one of the known job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed, JobStatusExpired:
		return true
	}
	return false
}

// JobPriority is the display priority of a job post
type JobPriority string

const (
	PriorityLow    JobPriority = "low"
	PriorityNormal JobPriority = "normal"
	PriorityHigh   JobPriority = "high"
	PriorityUrgent JobPriority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p JobPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// PaymentType is how the payment amount is to be read
type PaymentType string

const (
	PaymentHourly PaymentType = "hourly"
	PaymentDaily  PaymentType = "daily"
	PaymentFixed  PaymentType = "fixed"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentHourly, PaymentDaily, PaymentFixed:
		return true
	}
	return false
}

// JobCategory is a catalog entry jobs are classified under
type JobCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:50" json:"icon"`
	Color       string    `gorm:"size:7;default:#007bff" json:"color"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for JobCategory model
func (JobCategory) TableName() string {
	return "job_categories"
}

// JobPost is an employer's listing for one scheduled shift of casual work.
// WorkTimeStart and WorkTimeEnd are clock strings in "HH:MM" form.
// DurationHours and ApplicationDeadline are derived and recomputed on
// every save; they are never independently settable.
type JobPost struct {
	ID                  uint             `gorm:"primaryKey" json:"id"`
	Title               string           `gorm:"size:200;not null" json:"title"`
	Description         string           `gorm:"type:text;not null" json:"description"`
	EmployerID          uint             `gorm:"not null;index" json:"employer_id"`
	Employer            *User            `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	CategoryID          uint             `gorm:"not null;index" json:"category_id"`
	Category            *JobCategory     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Location            string           `gorm:"size:200;not null" json:"location"`
	WorkDate            datatypes.Date   `gorm:"not null" json:"work_date"`
	WorkTimeStart       string           `gorm:"size:5;not null" json:"work_time_start"`
	WorkTimeEnd         string           `gorm:"size:5;not null" json:"work_time_end"`
	DurationHours       decimal.Decimal  `gorm:"type:decimal(5,2)" json:"duration_hours"`
	PaymentType         PaymentType      `gorm:"size:10;default:hourly" json:"payment_type"`
	PaymentAmount       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"payment_amount"`
	RequiredSkills      string           `gorm:"type:text" json:"required_skills"`
	ExperienceRequired  int              `gorm:"default:0" json:"experience_required"`
	NumberOfWorkers     int              `gorm:"default:1" json:"number_of_workers"`
	Status              JobStatus        `gorm:"size:10;default:draft;index" json:"status"`
	Priority            JobPriority      `gorm:"size:10;default:normal" json:"priority"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	ContactPhone        string           `gorm:"size:15" json:"contact_phone"`
	ContactEmail        string           `gorm:"size:254" json:"contact_email"`
	Applications        []JobApplication `gorm:"foreignKey:JobID" json:"applications,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// TableName specifies the table name for JobPost model
func (JobPost) TableName() string {
	return "job_posts"
}

// MinuteOfDay parses a "HH:MM" clock string into its minute offset from
// midnight.
func MinuteOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ComputeDurationHours returns the wall-clock span between two clock
// strings in hours, rounded to two decimals. An end before the start is
// read as crossing midnight, so 22:00-06:00 is 8 hours.
func ComputeDurationHours(start, end string) (decimal.Decimal, error) {
	startMin, err := MinuteOfDay(start)
	if err != nil {
		return decimal.Zero, err
	}
	endMin, err := MinuteOfDay(end)
	if err != nil {
		return decimal.Zero, err
	}
	span := endMin - startMin
	if span < 0 {
		span += 24 * 60
	}
	return decimal.NewFromInt(int64(span)).
		Div(decimal.NewFromInt(60)).
		Round(2), nil
}

// StartInstant combines the work date and start clock into the scheduled
// work start instant in local time. The clock string must be valid; a
// malformed one yields midnight of the work date.
func (j *JobPost) StartInstant() time.Time {
	d := time.Time(j.WorkDate)
	startMin, err := MinuteOfDay(j.WorkTimeStart)
	if err != nil {
		startMin = 0
	}
	return time.Date(d.Year(), d.Month(), d.Day(), startMin/60, startMin%60, 0, 0, time.Local)
}

// IsExpired reports whether the scheduled work start has passed.
func (j *JobPost) IsExpired(now time.Time) bool {
	return !now.Before(j.StartInstant())
}

// CalculateTotalPayment returns the full payment for the shift. Only the
// hourly type multiplies by duration; daily and fixed amounts are already
// totals and pass through unchanged.
func (j *JobPost) CalculateTotalPayment() decimal.Decimal {
	if j.PaymentType == PaymentHourly {
		return j.PaymentAmount.Mul(j.DurationHours)
	}
	return j.PaymentAmount
}

// RequiredSkillsList splits the free-text skill requirement into tokens.
func (j *JobPost) RequiredSkillsList() []string {
	var skills []string
	for _, s := range strings.Split(j.RequiredSkills, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// BeforeSave recomputes the derived fields: duration from the clock span
// and the application deadline from the work start instant.
func (j *JobPost) BeforeSave(tx *gorm.DB) error {
	if j.WorkTimeStart != "" && j.WorkTimeEnd != "" {
		duration, err := ComputeDurationHours(j.WorkTimeStart, j.WorkTimeEnd)
		if err != nil {
			return err
		}
		j.DurationHours = duration
	}
	if !time.Time(j.WorkDate).IsZero() && j.WorkTimeStart != "" {
		deadline := j.StartInstant()
		j.ApplicationDeadline = &deadline
	}
	return nil
}
