package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Skill is an entry in the normalized skill catalog
type Skill struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	NormalizedName string    `gorm:"size:100;uniqueIndex" json:"normalized_name"`
	Category       string    `gorm:"size:50" json:"category"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for Skill model
func (Skill) TableName() string {
	return "skills"
}

// NormalizeSkillName returns the matching form of a skill name:
// lowercased and trimmed.
func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BeforeSave recomputes the normalized name on every save.
func (s *Skill) BeforeSave(tx *gorm.DB) error {
	s.NormalizedName = NormalizeSkillName(s.Name)
	return nil
}
