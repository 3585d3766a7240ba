package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Role is the closed set of account types. Authorization decisions go
// through the capability methods, never through raw string comparison.
type Role string

const (
	RoleEmployer Role = "employer"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployer, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

// CanPostJobs reports whether the role may create and manage job posts.
func (r Role) CanPostJobs() bool {
	return r == RoleEmployer
}

// CanApply reports whether the role may submit job applications.
func (r Role) CanApply() bool {
	return r == RoleWorker
}

// CanModerate reports whether the role may access the admin back office.
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

// User represents an account in the system
type User struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Username     string          `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string          `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string          `gorm:"size:128;not null" json:"-"`
	Role         Role            `gorm:"size:10;not null;default:worker;index" json:"role"`
	PhoneNumber  *string         `gorm:"size:15;uniqueIndex" json:"phone_number,omitempty"`
	DateOfBirth  *datatypes.Date `json:"date_of_birth,omitempty"`
	Address      string          `gorm:"type:text" json:"address,omitempty"`
	IsVerified   bool            `gorm:"default:false" json:"is_verified"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	Profile      *UserProfile    `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserProfile holds the extended profile attached one-to-one to a user
type UserProfile struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	UserID          uint             `gorm:"uniqueIndex;not null" json:"user_id"`
	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio             string           `gorm:"size:500" json:"bio"`
	Skills          []Skill          `gorm:"many2many:user_profile_skills" json:"skills,omitempty"`
	CustomSkills    string           `gorm:"type:text" json:"custom_skills"`
	ExperienceYears int              `gorm:"default:0" json:"experience_years"`
	HourlyRate      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"hourly_rate,omitempty"`
	Availability    string           `gorm:"type:text" json:"availability"`
	IsAvailable     bool             `gorm:"default:true" json:"is_available"`
}

// TableName specifies the table name for UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}

// SkillNames returns the display names of catalog skills plus the custom
// skill tokens, in that order.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return append(names, splitSkillTokens(p.CustomSkills, false)...)
}

// NormalizedSkills returns the skill set used for matching: normalized
// catalog names plus normalized custom tokens.
func (p *UserProfile) NormalizedSkills() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.NormalizedName)
	}
	return append(names, splitSkillTokens(p.CustomSkills, true)...)
}

// splitSkillTokens splits a comma separated skill string, trimming each
// token and dropping empties.
func splitSkillTokens(raw string, normalize bool) []string {
	var tokens []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if normalize {
			tok = strings.ToLower(tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
