package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"casual-jobs-connect/internal/models"
	"casual-jobs-connect/internal/utils"
)

// Page sizes for the two listings.
const (
	PublicPageSize = 12
	OwnerPageSize  = 10
)

// applicantCount is the correlated subquery used for applicant-presence
// filters and the most-applicants sort. Jobs with zero applicants count
// as 0, they are never excluded by it.
const applicantCount = "(SELECT COUNT(*) FROM job_applications WHERE job_applications.job_id = job_posts.id)"

// JobService owns the job post lifecycle: creation, edits, the status
// state machine, and listing/search composition.
type JobService struct {
	db *gorm.DB
}

// NewJobService creates a new JobService
func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// JobInput carries the employer-settable fields of a job post. Derived
// fields (duration, application deadline) are computed, never accepted.
type JobInput struct {
	Title              string
	Description        string
	CategoryID         uint
	Location           string
	WorkDate           time.Time
	WorkTimeStart      string
	WorkTimeEnd        string
	PaymentType        models.PaymentType
	PaymentAmount      decimal.Decimal
	RequiredSkills     string
	ExperienceRequired int
	NumberOfWorkers    int
	Priority           models.JobPriority
	ContactPhone       string
	ContactEmail       string
	Draft              bool
}

func (s *JobService) validateInput(in *JobInput) error {
	if _, err := models.MinuteOfDay(in.WorkTimeStart); err != nil {
		return ErrInvalidWorkTime
	}
	if _, err := models.MinuteOfDay(in.WorkTimeEnd); err != nil {
		return ErrInvalidWorkTime
	}
	if !in.PaymentAmount.IsPositive() {
		return ErrInvalidPayment
	}
	if in.PaymentType == "" {
		in.PaymentType = models.PaymentHourly
	}
	if !in.PaymentType.Valid() {
		return ErrInvalidPayType
	}
	if in.Priority == "" {
		in.Priority = models.PriorityNormal
	}
	if !in.Priority.Valid() {
		return ErrInvalidPriority
	}
	if in.NumberOfWorkers == 0 {
		in.NumberOfWorkers = 1
	}
	if in.NumberOfWorkers < 1 {
		return ErrInvalidWorkers
	}

	var count int64
	if err := s.db.Model(&models.JobCategory{}).
		Where("id = ? AND is_active = ?", in.CategoryID, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrInvalidCategory
	}
	return nil
}

// Create creates a job post for the acting employer, published unless
// the input asks for a draft.
func (s *JobService) Create(actor Actor, in JobInput) (*models.JobPost, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrEmployerOnly
	}
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	status := models.JobStatusPublished
	if in.Draft {
		status = models.JobStatusDraft
	}

	job := models.JobPost{
		Title:              in.Title,
		Description:        in.Description,
		EmployerID:         actor.ID,
		CategoryID:         in.CategoryID,
		Location:           in.Location,
		WorkDate:           datatypes.Date(in.WorkDate),
		WorkTimeStart:      in.WorkTimeStart,
		WorkTimeEnd:        in.WorkTimeEnd,
		PaymentType:        in.PaymentType,
		PaymentAmount:      in.PaymentAmount,
		RequiredSkills:     in.RequiredSkills,
		ExperienceRequired: in.ExperienceRequired,
		NumberOfWorkers:    in.NumberOfWorkers,
		Status:             status,
		Priority:           in.Priority,
		ContactPhone:       in.ContactPhone,
		ContactEmail:       in.ContactEmail,
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Update edits a job owned by the acting employer. Saving a draft
// without the draft flag publishes it; editing the schedule of a closed
// or expired job back into the future reopens it.
func (s *JobService) Update(actor Actor, jobID uint, in JobInput, now time.Time) (*models.JobPost, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrEmployerOnly
	}
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	var job models.JobPost
	if err := s.db.Where("id = ? AND employer_id = ?", jobID, actor.ID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	job.Title = in.Title
	job.Description = in.Description
	job.CategoryID = in.CategoryID
	job.Location = in.Location
	job.WorkDate = datatypes.Date(in.WorkDate)
	job.WorkTimeStart = in.WorkTimeStart
	job.WorkTimeEnd = in.WorkTimeEnd
	job.PaymentType = in.PaymentType
	job.PaymentAmount = in.PaymentAmount
	job.RequiredSkills = in.RequiredSkills
	job.ExperienceRequired = in.ExperienceRequired
	job.NumberOfWorkers = in.NumberOfWorkers
	job.Priority = in.Priority
	job.ContactPhone = in.ContactPhone
	job.ContactEmail = in.ContactEmail

	// A draft goes live the first time it is saved without the draft
	// flag.
	if job.Status == models.JobStatusDraft && !in.Draft {
		job.Status = models.JobStatusPublished
	}

	// Reopen rule: a closed or expired job whose new schedule is still in
	// the future becomes published again.
	if (job.Status == models.JobStatusClosed || job.Status == models.JobStatusExpired) &&
		now.Before(job.StartInstant()) {
		job.Status = models.JobStatusPublished
	}

	if err := s.db.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Get fetches one job post and reconciles its status against the clock.
// Drafts are visible only to their owner and admins.
func (s *JobService) Get(jobID uint, actor *Actor, now time.Time) (*models.JobPost, error) {
	var job models.JobPost
	if err := s.db.Preload("Category").Preload("Employer").First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if job.Status == models.JobStatusDraft {
		if actor == nil || (actor.ID != job.EmployerID && !actor.Role.CanModerate()) {
			return nil, ErrNotFound
		}
	}

	if _, err := s.ReconcileStatus(&job, now); err != nil {
		return nil, err
	}
	return &job, nil
}

// ReconcileStatus applies the auto-close transition: a published job
// whose work start instant has passed becomes closed. Only the status
// field is persisted. Idempotent; called from detail reads and from the
// sweep.
func (s *JobService) ReconcileStatus(job *models.JobPost, now time.Time) (bool, error) {
	if job.Status != models.JobStatusPublished || !job.IsExpired(now) {
		return false, nil
	}
	if err := s.db.Model(job).UpdateColumn("status", models.JobStatusClosed).Error; err != nil {
		return false, err
	}
	job.Status = models.JobStatusClosed
	return true, nil
}

// CloseExpired runs the auto-close transition over every published job.
// Returns how many jobs were closed.
func (s *JobService) CloseExpired(now time.Time) (int, error) {
	var jobs []models.JobPost
	if err := s.db.Where("status = ?", models.JobStatusPublished).Find(&jobs).Error; err != nil {
		return 0, err
	}

	closed := 0
	for i := range jobs {
		changed, err := s.ReconcileStatus(&jobs[i], now)
		if err != nil {
			return closed, err
		}
		if changed {
			closed++
		}
	}
	return closed, nil
}

// expireAfter is how long a closed job sits before moving to the
// terminal expired status.
const expireAfter = 30 * 24 * time.Hour

// MarkExpired moves closed jobs whose work start is at least thirty days
// past into the terminal expired status. Runs only from the sweep.
func (s *JobService) MarkExpired(now time.Time) (int, error) {
	var jobs []models.JobPost
	if err := s.db.Where("status = ?", models.JobStatusClosed).Find(&jobs).Error; err != nil {
		return 0, err
	}

	expired := 0
	cutoff := now.Add(-expireAfter)
	for i := range jobs {
		if jobs[i].StartInstant().After(cutoff) {
			continue
		}
		if err := s.db.Model(&jobs[i]).UpdateColumn("status", models.JobStatusExpired).Error; err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}

// JobFilter is the public search specification: every predicate is
// optional and the zero value matches all published jobs.
type JobFilter struct {
	Keyword    string
	CategoryID uint
	Location   string
	PaymentMin *decimal.Decimal
	PaymentMax *decimal.Decimal
}

// Apply composes the filter onto a query. Pure with respect to f: the
// same filter value always produces the same predicates.
func (f JobFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Keyword != "" {
		kw := "%" + strings.ToLower(f.Keyword) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(required_skills) LIKE ?",
			kw, kw, kw,
		)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.PaymentMin != nil {
		q = q.Where("payment_amount >= ?", f.PaymentMin)
	}
	if f.PaymentMax != nil {
		q = q.Where("payment_amount <= ?", f.PaymentMax)
	}
	return q
}

// Search returns the published jobs matching the filter, newest first,
// along with the total match count for pagination.
func (s *JobService) Search(filter JobFilter, page utils.Page) ([]models.JobPost, int64, error) {
	query := filter.Apply(
		s.db.Model(&models.JobPost{}).Where("status = ?", models.JobStatusPublished),
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobPost
	if err := query.
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Preload("Category").
		Preload("Employer").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// RecentPublished returns the newest published jobs for the landing page.
func (s *JobService) RecentPublished(limit int) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := s.db.
		Where("status = ?", models.JobStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&jobs).Error
	return jobs, err
}

// Time-window values for MyJobsFilter.
const (
	WindowUpcoming  = "upcoming"
	WindowPast      = "past"
	WindowToday     = "today"
	WindowThisWeek  = "this_week"
	WindowThisMonth = "this_month"
)

// Applicant-presence values for MyJobsFilter.
const (
	ApplicantsAny  = ""
	ApplicantsSome = "has"
	ApplicantsNone = "none"
)

// Sort keys for MyJobsFilter.
const (
	SortNewest         = "newest"
	SortOldest         = "oldest"
	SortMostApplicants = "most_applicants"
	SortDateAsc        = "date_asc"
	SortDateDesc       = "date_desc"
)

// MyJobsFilter is the employer-listing specification: status, work-date
// window, applicant presence, and a sort key overriding the default
// newest-first order.
type MyJobsFilter struct {
	Status     models.JobStatus
	TimeWindow string
	Applicants string
	Sort       string
}

// Apply composes the filter's predicates onto a query, with time windows
// evaluated against now.
func (f MyJobsFilter) Apply(q *gorm.DB, now time.Time) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	switch f.TimeWindow {
	case WindowUpcoming:
		q = q.Where("work_date >= ?", tomorrow)
	case WindowPast:
		q = q.Where("work_date < ?", today)
	case WindowToday:
		q = q.Where("work_date >= ? AND work_date < ?", today, tomorrow)
	case WindowThisWeek:
		monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		q = q.Where("work_date >= ? AND work_date < ?", monday, monday.AddDate(0, 0, 7))
	case WindowThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		q = q.Where("work_date >= ? AND work_date < ?", first, first.AddDate(0, 1, 0))
	}

	switch f.Applicants {
	case ApplicantsSome:
		q = q.Where(applicantCount + " > 0")
	case ApplicantsNone:
		q = q.Where(applicantCount + " = 0")
	}
	return q
}

// Order returns the ORDER BY clause for the filter's sort key.
func (f MyJobsFilter) Order() string {
	switch f.Sort {
	case SortOldest:
		return "created_at ASC"
	case SortMostApplicants:
		return applicantCount + " DESC, created_at DESC"
	case SortDateAsc:
		return "work_date ASC, work_time_start ASC"
	case SortDateDesc:
		return "work_date DESC, work_time_start DESC"
	default:
		return "created_at DESC"
	}
}

// ListByEmployer returns one page of the employer's own jobs under the
// given filter, any status included.
func (s *JobService) ListByEmployer(employerID uint, filter MyJobsFilter, page utils.Page, now time.Time) ([]models.JobPost, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}

	query := filter.Apply(
		s.db.Model(&models.JobPost{}).Where("employer_id = ?", employerID),
		now,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobPost
	if err := query.
		Order(filter.Order()).
		Limit(page.Size).
		Offset(page.Offset()).
		Preload("Category").
		Preload("Applications").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ActiveCategories returns the active job categories in name order.
func (s *JobService) ActiveCategories() ([]models.JobCategory, error) {
	var categories []models.JobCategory
	err := s.db.Where("is_active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}
