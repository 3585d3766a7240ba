package models

import (
	"time"
)

// ComplaintStatus is the moderation state of a complaint
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

// Valid reports whether s is one of the known complaint statuses.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

// ComplaintType classifies what a complaint is about
type ComplaintType string

const (
	ComplaintJobPosting   ComplaintType = "job_posting"
	ComplaintUserBehavior ComplaintType = "user_behavior"
	ComplaintPayment      ComplaintType = "payment"
	ComplaintTechnical    ComplaintType = "technical"
	ComplaintOther        ComplaintType = "other"
)

// Valid reports whether t is one of the known complaint types.
func (t ComplaintType) Valid() bool {
	switch t {
	case ComplaintJobPosting, ComplaintUserBehavior, ComplaintPayment, ComplaintTechnical, ComplaintOther:
		return true
	}
	return false
}

// Complaint is a user-filed moderation request handled by admins.
// Complaints reference users and jobs but never feed back into the job
// or application lifecycle.
type Complaint struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	User          *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ReferenceCode string          `gorm:"size:36;uniqueIndex;not null" json:"reference_code"`
	Title         string          `gorm:"size:200;not null" json:"title"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	ComplaintType ComplaintType   `gorm:"size:20;default:other" json:"complaint_type"`
	Status        ComplaintStatus `gorm:"size:20;default:pending;index" json:"status"`
	AdminNotes    string          `gorm:"type:text" json:"admin_notes"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// AdminAction is the closed set of logged admin actions
type AdminAction string

const (
	ActionUserVerified      AdminAction = "user_verified"
	ActionUserBanned        AdminAction = "user_banned"
	ActionComplaintResolved AdminAction = "complaint_resolved"
	ActionSkillAdded        AdminAction = "skill_added"
	ActionSkillUpdated      AdminAction = "skill_updated"
	ActionSystemConfig      AdminAction = "system_config"
	ActionDataExport        AdminAction = "data_export"
)

// AdminActivity records an admin action for the audit trail
type AdminActivity struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	AdminID      uint        `gorm:"not null;index" json:"admin_id"`
	Admin        *User       `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Action       AdminAction `gorm:"size:30;not null" json:"action"`
	Description  string      `gorm:"type:text" json:"description"`
	TargetUserID *uint       `gorm:"index" json:"target_user_id,omitempty"`
	TargetUser   *User       `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TableName specifies the table name for AdminActivity model
func (AdminActivity) TableName() string {
	return "admin_activities"
}
