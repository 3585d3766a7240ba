package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the application lifecycle state
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

// JobApplication is a worker's request to perform a specific job post.
// The composite unique index keeps one application per (job, applicant)
// pair; the engine relies on it to break submission races.
// ProposedRate is kept nullable for historical rows but is always forced
// to null on submission: the job's own payment terms are authoritative.
type JobApplication struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	JobID        uint              `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job          *JobPost          `gorm:"foreignKey:JobID" json:"job,omitempty"`
	ApplicantID  uint              `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant    *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Status       ApplicationStatus `gorm:"size:10;default:pending;index" json:"status"`
	CoverLetter  string            `gorm:"type:text" json:"cover_letter"`
	ProposedRate *decimal.Decimal  `gorm:"type:decimal(10,2)" json:"proposed_rate,omitempty"`
	AppliedAt    time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName specifies the table name for JobApplication model
func (JobApplication) TableName() string {
	return "job_applications"
}
