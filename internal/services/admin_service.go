package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casual-jobs-connect/internal/models"
)

// AdminService handles the moderation back office: complaints, user
// management, and the audit trail. Its actions never feed back into the
// job or application lifecycle.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminService
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// DashboardStats is the admin landing page summary
type DashboardStats struct {
	TotalUsers        int64                  `json:"total_users"`
	TotalWorkers      int64                  `json:"total_workers"`
	TotalEmployers    int64                  `json:"total_employers"`
	TotalJobs         int64                  `json:"total_jobs"`
	TotalComplaints   int64                  `json:"total_complaints"`
	PendingComplaints int64                  `json:"pending_complaints"`
	NewUsers30d       int64                  `json:"new_users_30d"`
	NewComplaints30d  int64                  `json:"new_complaints_30d"`
	RecentComplaints  []models.Complaint     `json:"recent_complaints"`
	RecentActivity    []models.AdminActivity `json:"recent_activity"`
}

// Dashboard collects the overview counters and recent records.
func (s *AdminService) Dashboard(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalWorkers, s.db.Model(&models.User{}).Where("role = ?", models.RoleWorker)},
		{&stats.TotalEmployers, s.db.Model(&models.User{}).Where("role = ?", models.RoleEmployer)},
		{&stats.TotalJobs, s.db.Model(&models.JobPost{})},
		{&stats.TotalComplaints, s.db.Model(&models.Complaint{})},
		{&stats.PendingComplaints, s.db.Model(&models.Complaint{}).Where("status = ?", models.ComplaintPending)},
		{&stats.NewUsers30d, s.db.Model(&models.User{}).Where("created_at >= ?", thirtyDaysAgo)},
		{&stats.NewComplaints30d, s.db.Model(&models.Complaint{}).Where("created_at >= ?", thirtyDaysAgo)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("User").Order("created_at DESC").Limit(5).
		Find(&stats.RecentComplaints).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Admin").Order("created_at DESC").Limit(10).
		Find(&stats.RecentActivity).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers returns users filtered by role and a username/email substring.
func (s *AdminService) ListUsers(role models.Role, search string) ([]models.User, error) {
	query := s.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

// SetVerified toggles a user's verified flag and logs the action.
func (s *AdminService) SetVerified(adminID, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&user).Update("is_verified", !user.IsVerified).Error; err != nil {
		return nil, err
	}
	user.IsVerified = !user.IsVerified

	s.logActivity(adminID, models.ActionUserVerified,
		fmt.Sprintf("Set verified=%t for user %s", user.IsVerified, user.Username), &user.ID)
	return &user, nil
}

// SetBanned toggles a user's active flag and logs the action. A banned
// user keeps their records but can no longer sign in.
func (s *AdminService) SetBanned(adminID, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive

	s.logActivity(adminID, models.ActionUserBanned,
		fmt.Sprintf("Set active=%t for user %s", user.IsActive, user.Username), &user.ID)
	return &user, nil
}

// ComplaintInput carries the fields of a user-filed complaint
type ComplaintInput struct {
	Title         string
	Description   string
	ComplaintType models.ComplaintType
}

// CreateComplaint files a complaint on behalf of the given user.
func (s *AdminService) CreateComplaint(userID uint, in ComplaintInput) (*models.Complaint, error) {
	if in.ComplaintType == "" {
		in.ComplaintType = models.ComplaintOther
	}
	if !in.ComplaintType.Valid() {
		return nil, ErrInvalidComplaint
	}

	complaint := models.Complaint{
		UserID:        userID,
		ReferenceCode: uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		ComplaintType: in.ComplaintType,
		Status:        models.ComplaintPending,
	}
	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns complaints, optionally narrowed by status and type.
func (s *AdminService) ListComplaints(status models.ComplaintStatus, ctype models.ComplaintType) ([]models.Complaint, error) {
	query := s.db.Model(&models.Complaint{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if ctype != "" {
		query = query.Where("complaint_type = ?", ctype)
	}

	var complaints []models.Complaint
	err := query.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// GetComplaint fetches one complaint with its filer.
func (s *AdminService) GetComplaint(complaintID uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.db.Preload("User").First(&complaint, complaintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaint moves a complaint through its moderation states. The
// transition into resolved stamps resolved_at; every update is logged.
func (s *AdminService) UpdateComplaint(adminID, complaintID uint, status models.ComplaintStatus, adminNotes string) (*models.Complaint, error) {
	if !status.Valid() {
		return nil, ErrInvalidComplaint
	}

	complaint, err := s.GetComplaint(complaintID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":      status,
		"admin_notes": adminNotes,
	}
	if complaint.Status != models.ComplaintResolved && status == models.ComplaintResolved {
		now := time.Now()
		updates["resolved_at"] = now
		complaint.ResolvedAt = &now
	}

	if err := s.db.Model(complaint).Updates(updates).Error; err != nil {
		return nil, err
	}
	complaint.Status = status
	complaint.AdminNotes = adminNotes

	s.logActivity(adminID, models.ActionComplaintResolved,
		fmt.Sprintf("Updated complaint %s to %s", complaint.ReferenceCode, status), &complaint.UserID)
	return complaint, nil
}

// ActivityLog returns the most recent admin actions.
func (s *AdminService) ActivityLog(limit int) ([]models.AdminActivity, error) {
	var activities []models.AdminActivity
	err := s.db.Preload("Admin").Preload("TargetUser").
		Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

// CreateCategory adds a job category to the catalog.
func (s *AdminService) CreateCategory(name, description, icon, color string) (*models.JobCategory, error) {
	category := models.JobCategory{
		Name:        name,
		Description: description,
		Icon:        icon,
		Color:       color,
		IsActive:    true,
	}
	if category.Color == "" {
		category.Color = "#007bff"
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) logActivity(adminID uint, action models.AdminAction, description string, targetUserID *uint) {
	activity := models.AdminActivity{
		AdminID:      adminID,
		Action:       action,
		Description:  description,
		TargetUserID: targetUserID,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		log.Printf("Warning: failed to log admin activity: %v", err)
	}
}
