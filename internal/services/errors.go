package services

import (
	"errors"

	"casual-jobs-connect/internal/models"
)

// Sentinel errors returned by the services. Handlers translate these into
// HTTP responses; anything else is an internal failure.
var (
	// Not found, including records that exist but are not owned by the
	// caller. Ownership is never disclosed.
	ErrNotFound = errors.New("record not found")

	// Authorization
	ErrEmployerOnly = errors.New("only employers can manage job posts")
	ErrWorkerOnly   = errors.New("only workers can apply to jobs")

	// Job validation
	ErrInvalidWorkTime  = errors.New("work times must be valid HH:MM clocks")
	ErrInvalidPayment   = errors.New("payment amount must be positive")
	ErrInvalidCategory  = errors.New("unknown or inactive job category")
	ErrInvalidStatus    = errors.New("invalid job status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidPayType   = errors.New("invalid payment type")
	ErrInvalidWorkers   = errors.New("number of workers must be at least 1")

	// Application lifecycle
	ErrJobNotOpen       = errors.New("job is not open for applications")
	ErrJobStarted       = errors.New("job has already started")
	ErrAlreadyApplied   = errors.New("you have already applied to this job")
	ErrPositionsFilled  = errors.New("all positions for this job have been filled")
	ErrNotWithdrawable  = errors.New("only pending applications can be withdrawn")
	ErrAlreadyResolved  = errors.New("application has already been resolved")

	// Accounts and profiles
	ErrInvalidRole     = errors.New("role must be employer or worker")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrEmailTaken      = errors.New("email is already in use")
	ErrPhoneTaken      = errors.New("phone number is already in use")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrAccountDisabled = errors.New("account is disabled")

	// Moderation
	ErrInvalidComplaint = errors.New("invalid complaint type or status")
	ErrEmptySkillName   = errors.New("skill name must not be empty")
)

// Actor identifies the authenticated caller of a service operation.
// Every mutating operation checks its capabilities at the boundary.
type Actor struct {
	ID   uint
	Role models.Role
}
