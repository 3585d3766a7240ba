package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"casual-jobs-connect/internal/auth"
	"casual-jobs-connect/internal/models"
	"casual-jobs-connect/internal/services"
)

// AdminHandler handles the moderation back office endpoints
type AdminHandler struct {
	adminService *services.AdminService
	skillService *services.SkillService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *services.AdminService, skillService *services.SkillService) *AdminHandler {
	return &AdminHandler{adminService: adminService, skillService: skillService}
}

// AdminMiddleware checks if the caller holds the admin role
func (h *AdminHandler) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := auth.GetRole(c)
		if !ok || !role.CanModerate() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetDashboard returns the admin overview.
// GET /api/admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetUsers lists users filtered by role and search text.
// GET /api/admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if role != "" && !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role filter"})
		return
	}

	users, err := h.adminService.ListUsers(role, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// VerifyUser toggles a user's verified flag.
// POST /api/admin/users/:id/verify
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	h.toggleUser(c, h.adminService.SetVerified)
}

// BanUser toggles a user's active flag.
// POST /api/admin/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	h.toggleUser(c, h.adminService.SetBanned)
}

func (h *AdminHandler) toggleUser(c *gin.Context, op func(uint, uint) (*models.User, error)) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := op(adminID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// FileComplaint files a complaint for any authenticated user.
// POST /api/complaints
func (h *AdminHandler) FileComplaint(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Title         string `json:"title" binding:"required"`
		Description   string `json:"description" binding:"required"`
		ComplaintType string `json:"complaint_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.adminService.CreateComplaint(userID, services.ComplaintInput{
		Title:         req.Title,
		Description:   req.Description,
		ComplaintType: models.ComplaintType(req.ComplaintType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    complaint,
	})
}

// GetComplaints lists complaints with status/type filters.
// GET /api/admin/complaints
func (h *AdminHandler) GetComplaints(c *gin.Context) {
	status := models.ComplaintStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	ctype := models.ComplaintType(c.Query("type"))
	if ctype != "" && !ctype.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type filter"})
		return
	}

	complaints, err := h.adminService.ListComplaints(status, ctype)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaints,
		"count":   len(complaints),
	})
}

// GetComplaint returns one complaint.
// GET /api/admin/complaints/:id
func (h *AdminHandler) GetComplaint(c *gin.Context) {
	complaintID, ok := paramID(c, "id")
	if !ok {
		return
	}

	complaint, err := h.adminService.GetComplaint(complaintID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaint,
	})
}

// UpdateComplaint moves a complaint through its moderation states.
// PUT /api/admin/complaints/:id
func (h *AdminHandler) UpdateComplaint(c *gin.Context) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	complaintID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status     string `json:"status" binding:"required"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.adminService.UpdateComplaint(adminID, complaintID,
		models.ComplaintStatus(req.Status), req.AdminNotes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaint,
	})
}

// AddSkill adds an entry to the skill catalog.
// POST /api/admin/skills
func (h *AdminHandler) AddSkill(c *gin.Context) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill, created, err := h.skillService.AddSkill(adminID, req.Name, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"success": true,
		"created": created,
		"data":    skill,
	})
}

// ToggleSkill flips a skill's active flag.
// POST /api/admin/skills/:id/toggle
func (h *AdminHandler) ToggleSkill(c *gin.Context) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	skillID, ok := paramID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skillService.ToggleSkill(adminID, skillID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    skill,
	})
}

// CreateCategory adds a job category.
// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminService.CreateCategory(req.Name, req.Description, req.Icon, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

// GetActivityLog returns the recent admin audit entries.
// GET /api/admin/activity
func (h *AdminHandler) GetActivityLog(c *gin.Context) {
	activities, err := h.adminService.ActivityLog(50)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    activities,
		"count":   len(activities),
	})
}
