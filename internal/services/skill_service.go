package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"casual-jobs-connect/internal/models"
)

// SkillService owns the normalized skill catalog
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a new SkillService
func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// ActiveSkills returns the active catalog entries in name order, used by
// the profile form.
func (s *SkillService) ActiveSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Where("is_active = ?", true).Order("name").Find(&skills).Error
	return skills, err
}

// AddSkill creates a catalog entry unless one with the same normalized
// name already exists. Creation is logged to the admin audit trail.
func (s *SkillService) AddSkill(adminID uint, name, category string) (*models.Skill, bool, error) {
	normalized := models.NormalizeSkillName(name)
	if normalized == "" {
		return nil, false, ErrEmptySkillName
	}

	var existing models.Skill
	err := s.db.Where("normalized_name = ?", normalized).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	skill := models.Skill{Name: name, Category: category, IsActive: true}
	if err := s.db.Create(&skill).Error; err != nil {
		return nil, false, err
	}

	s.logActivity(adminID, models.ActionSkillAdded, fmt.Sprintf("Added skill: %s", skill.Name))
	return &skill, true, nil
}

// ToggleSkill flips a catalog entry's active flag.
func (s *SkillService) ToggleSkill(adminID, skillID uint) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&skill).Update("is_active", !skill.IsActive).Error; err != nil {
		return nil, err
	}
	skill.IsActive = !skill.IsActive

	s.logActivity(adminID, models.ActionSkillUpdated, fmt.Sprintf("Toggled skill: %s", skill.Name))
	return &skill, nil
}

func (s *SkillService) logActivity(adminID uint, action models.AdminAction, description string) {
	activity := models.AdminActivity{
		AdminID:     adminID,
		Action:      action,
		Description: description,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		// Audit logging never blocks the admin operation itself.
		log.Printf("Warning: failed to log admin activity: %v", err)
	}
}
