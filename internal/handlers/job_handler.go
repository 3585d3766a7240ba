package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"casual-jobs-connect/internal/models"
	"casual-jobs-connect/internal/services"
	"casual-jobs-connect/internal/utils"
)

// JobHandler handles job post endpoints
type JobHandler struct {
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *services.JobService, applicationService *services.ApplicationService) *JobHandler {
	return &JobHandler{jobService: jobService, applicationService: applicationService}
}

type jobRequest struct {
	Title              string          `json:"title" binding:"required"`
	Description        string          `json:"description" binding:"required"`
	CategoryID         uint            `json:"category_id" binding:"required"`
	Location           string          `json:"location" binding:"required"`
	WorkDate           string          `json:"work_date" binding:"required"`
	WorkTimeStart      string          `json:"work_time_start" binding:"required"`
	WorkTimeEnd        string          `json:"work_time_end" binding:"required"`
	PaymentType        string          `json:"payment_type"`
	PaymentAmount      decimal.Decimal `json:"payment_amount"`
	RequiredSkills     string          `json:"required_skills"`
	ExperienceRequired int             `json:"experience_required"`
	NumberOfWorkers    int             `json:"number_of_workers"`
	Priority           string          `json:"priority"`
	ContactPhone       string          `json:"contact_phone"`
	ContactEmail       string          `json:"contact_email" binding:"omitempty,email"`
	Draft              bool            `json:"draft"`
}

func (r *jobRequest) toInput(c *gin.Context) (services.JobInput, bool) {
	workDate, err := time.ParseInLocation("2006-01-02", r.WorkDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "work_date must be YYYY-MM-DD"})
		return services.JobInput{}, false
	}

	return services.JobInput{
		Title:              r.Title,
		Description:        r.Description,
		CategoryID:         r.CategoryID,
		Location:           r.Location,
		WorkDate:           workDate,
		WorkTimeStart:      r.WorkTimeStart,
		WorkTimeEnd:        r.WorkTimeEnd,
		PaymentType:        models.PaymentType(r.PaymentType),
		PaymentAmount:      r.PaymentAmount,
		RequiredSkills:     r.RequiredSkills,
		ExperienceRequired: r.ExperienceRequired,
		NumberOfWorkers:    r.NumberOfWorkers,
		Priority:           models.JobPriority(r.Priority),
		ContactPhone:       r.ContactPhone,
		ContactEmail:       r.ContactEmail,
		Draft:              r.Draft,
	}, true
}

// ListJobs returns the public listing with search and filters.
// GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := services.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be a numeric id"})
			return
		}
		filter.CategoryID = uint(id)
	}
	if raw := c.Query("payment_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment_min must be a number"})
			return
		}
		filter.PaymentMin = &min
	}
	if raw := c.Query("payment_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment_max must be a number"})
			return
		}
		filter.PaymentMax = &max
	}

	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := utils.NewPage(pageNum, services.PublicPageSize)

	jobs, total, err := h.jobService.Search(filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        jobs,
		"total":       total,
		"page":        page.Number,
		"total_pages": utils.TotalPages(total, page.Size),
	})
}

// RecentJobs returns the newest published jobs for the landing page.
// GET /api/jobs/recent
func (h *JobHandler) RecentJobs(c *gin.Context) {
	jobs, err := h.jobService.RecentPublished(6)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    jobs,
	})
}

// GetJob returns one job post. Reading a published job past its start
// closes it; a signed-in worker also sees their own application.
// GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	actor := optionalActor(c)
	job, err := h.jobService.Get(jobID, actor, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"success":       true,
		"data":          job,
		"total_payment": job.CalculateTotalPayment(),
	}

	if actor != nil && actor.Role.CanApply() {
		application, err := h.applicationService.GetForJobAndApplicant(job.ID, actor.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		if application != nil {
			response["user_application"] = application
		}
	}

	c.JSON(http.StatusOK, response)
}

// CreateJob creates a job post for the acting employer.
// POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	job, err := h.jobService.Create(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    job,
	})
}

// UpdateJob edits a job owned by the acting employer; editing the
// schedule into the future reopens a closed job.
// PUT /api/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	job, err := h.jobService.Update(actor, jobID, input, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}

// MyJobs returns the acting employer's own jobs with the extended
// filters and sort selection.
// GET /api/my-jobs
func (h *JobHandler) MyJobs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filter := services.MyJobsFilter{
		Status:     models.JobStatus(c.Query("status")),
		TimeWindow: c.Query("time_window"),
		Applicants: c.Query("applicants"),
		Sort:       c.DefaultQuery("sort", services.SortNewest),
	}

	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := utils.NewPage(pageNum, services.OwnerPageSize)

	jobs, total, err := h.jobService.ListByEmployer(actor.ID, filter, page, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        jobs,
		"total":       total,
		"page":        page.Number,
		"total_pages": utils.TotalPages(total, page.Size),
	})
}

// Categories returns the active job categories.
// GET /api/categories
func (h *JobHandler) Categories(c *gin.Context) {
	categories, err := h.jobService.ActiveCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}
