package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"casual-jobs-connect/internal/models"
)

// ProfileService handles user profile reads and edits
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetOrCreate returns the user's profile, creating the shell row if the
// account predates profiles.
func (s *ProfileService) GetOrCreate(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).Preload("Skills").Preload("User").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileInput carries the editable profile fields. Email and phone live
// on the user row but are edited through the profile form, as in the
// account settings screen.
type ProfileInput struct {
	Bio             string
	SkillIDs        []uint
	CustomSkills    string
	ExperienceYears int
	HourlyRate      *decimal.Decimal
	Availability    string
	IsAvailable     bool
	Email           string
	PhoneNumber     string
}

// Update edits the profile and the contact fields on the user. Duplicate
// email or phone surfaces as a validation error, not a raw failure.
func (s *ProfileService) Update(userID uint, in ProfileInput) (*models.UserProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		var count int64
		if err := s.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", in.Email, userID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}
	if in.PhoneNumber != "" {
		var count int64
		if err := s.db.Model(&models.User{}).
			Where("phone_number = ? AND id <> ?", in.PhoneNumber, userID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrPhoneTaken
		}
	}

	var skills []models.Skill
	if len(in.SkillIDs) > 0 {
		if err := s.db.Where("id IN ? AND is_active = ?", in.SkillIDs, true).Find(&skills).Error; err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		profile.Bio = in.Bio
		profile.CustomSkills = in.CustomSkills
		profile.ExperienceYears = in.ExperienceYears
		profile.HourlyRate = in.HourlyRate
		profile.Availability = in.Availability
		profile.IsAvailable = in.IsAvailable

		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		if err := tx.Model(profile).Association("Skills").Replace(skills); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if in.Email != "" {
			updates["email"] = in.Email
		}
		if in.PhoneNumber != "" {
			updates["phone_number"] = in.PhoneNumber
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	profile.Skills = skills
	return profile, nil
}
