package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"casual-jobs-connect/internal/database"
	"casual-jobs-connect/internal/models"
)

// ApplicationService owns the application lifecycle: gated submission
// and employer-driven resolution.
type ApplicationService struct {
	db   *gorm.DB
	jobs *JobService
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db, jobs: NewJobService(db)}
}

// Apply submits an application for the acting worker. The proposed rate
// is always nulled: the job's payment terms are authoritative. The
// duplicate pre-check is backed by the unique (job, applicant) index, so
// a raced second submission fails with the same error.
func (s *ApplicationService) Apply(actor Actor, jobID uint, coverLetter string, now time.Time) (*models.JobApplication, error) {
	if !actor.Role.CanApply() {
		return nil, ErrWorkerOnly
	}

	var job models.JobPost
	if err := s.db.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A published job past its start instant reads as started, not merely
	// closed; the read also performs the auto-close transition.
	if job.Status == models.JobStatusPublished && job.IsExpired(now) {
		if _, err := s.jobs.ReconcileStatus(&job, now); err != nil {
			return nil, err
		}
		return nil, ErrJobStarted
	}
	if job.Status != models.JobStatusPublished {
		return nil, ErrJobNotOpen
	}

	var existing int64
	if err := s.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", job.ID, actor.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyApplied
	}

	application := models.JobApplication{
		JobID:        job.ID,
		ApplicantID:  actor.ID,
		Status:       models.ApplicationPending,
		CoverLetter:  coverLetter,
		ProposedRate: nil,
	}

	if err := s.db.Create(&application).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return &application, nil
}

// ownedApplication fetches an application whose parent job belongs to
// the acting employer. A foreign or unknown id is a plain not-found.
func (s *ApplicationService) ownedApplication(actor Actor, applicationID uint) (*models.JobApplication, error) {
	var application models.JobApplication
	err := s.db.
		Joins("JOIN job_posts ON job_posts.id = job_applications.job_id").
		Where("job_applications.id = ? AND job_posts.employer_id = ?", applicationID, actor.ID).
		Preload("Job").
		Preload("Applicant").
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// Accept marks an application accepted. Only the employer owning the
// parent job may call it, and only while the job still has open slots.
func (s *ApplicationService) Accept(actor Actor, applicationID uint) (*models.JobApplication, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrEmployerOnly
	}

	application, err := s.ownedApplication(actor, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationPending {
		return nil, ErrAlreadyResolved
	}

	var accepted int64
	if err := s.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND status = ?", application.JobID, models.ApplicationAccepted).
		Count(&accepted).Error; err != nil {
		return nil, err
	}
	if application.Job != nil && accepted >= int64(application.Job.NumberOfWorkers) {
		return nil, ErrPositionsFilled
	}

	if err := s.db.Model(application).Update("status", models.ApplicationAccepted).Error; err != nil {
		return nil, err
	}
	application.Status = models.ApplicationAccepted
	return application, nil
}

// Reject marks an application rejected. Only the employer owning the
// parent job may call it.
func (s *ApplicationService) Reject(actor Actor, applicationID uint) (*models.JobApplication, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrEmployerOnly
	}

	application, err := s.ownedApplication(actor, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationPending {
		return nil, ErrAlreadyResolved
	}

	if err := s.db.Model(application).Update("status", models.ApplicationRejected).Error; err != nil {
		return nil, err
	}
	application.Status = models.ApplicationRejected
	return application, nil
}

// Withdraw cancels the acting worker's own pending application.
func (s *ApplicationService) Withdraw(actor Actor, applicationID uint) (*models.JobApplication, error) {
	if !actor.Role.CanApply() {
		return nil, ErrWorkerOnly
	}

	var application models.JobApplication
	err := s.db.
		Where("id = ? AND applicant_id = ?", applicationID, actor.ID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if application.Status != models.ApplicationPending {
		return nil, ErrNotWithdrawable
	}

	if err := s.db.Model(&application).Update("status", models.ApplicationWithdrawn).Error; err != nil {
		return nil, err
	}
	application.Status = models.ApplicationWithdrawn
	return &application, nil
}

// ListByApplicant returns the worker's applications, newest first.
func (s *ApplicationService) ListByApplicant(applicantID uint) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := s.db.
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Preload("Job").
		Preload("Job.Category").
		Find(&applications).Error
	return applications, err
}

// ListForJob returns the applications for a job owned by the acting
// employer, newest first.
func (s *ApplicationService) ListForJob(actor Actor, jobID uint) ([]models.JobApplication, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrEmployerOnly
	}

	var job models.JobPost
	if err := s.db.Where("id = ? AND employer_id = ?", jobID, actor.ID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var applications []models.JobApplication
	err := s.db.
		Where("job_id = ?", job.ID).
		Order("applied_at DESC").
		Preload("Applicant").
		Find(&applications).Error
	return applications, err
}

// GetForJobAndApplicant returns a worker's own application to a job, or
// nil when they have not applied.
func (s *ApplicationService) GetForJobAndApplicant(jobID, applicantID uint) (*models.JobApplication, error) {
	var application models.JobApplication
	err := s.db.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}
