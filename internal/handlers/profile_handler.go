package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"casual-jobs-connect/internal/auth"
	"casual-jobs-connect/internal/services"
)

// ProfileHandler handles profile and skill catalog endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
	skillService   *services.SkillService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *services.ProfileService, skillService *services.SkillService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, skillService: skillService}
}

// GetProfile returns the acting user's profile.
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetOrCreate(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
		"skills":  profile.SkillNames(),
	})
}

// UpdateProfile edits the acting user's profile and contact fields.
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Bio             string           `json:"bio"`
		SkillIDs        []uint           `json:"skill_ids"`
		CustomSkills    string           `json:"custom_skills"`
		ExperienceYears int              `json:"experience_years"`
		HourlyRate      *decimal.Decimal `json:"hourly_rate"`
		Availability    string           `json:"availability"`
		IsAvailable     bool             `json:"is_available"`
		Email           string           `json:"email" binding:"omitempty,email"`
		PhoneNumber     string           `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(userID, services.ProfileInput{
		Bio:             req.Bio,
		SkillIDs:        req.SkillIDs,
		CustomSkills:    req.CustomSkills,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
		IsAvailable:     req.IsAvailable,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// Skills returns the active skill catalog for profile forms.
// GET /api/skills
func (h *ProfileHandler) Skills(c *gin.Context) {
	skills, err := h.skillService.ActiveSkills()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    skills,
	})
}
