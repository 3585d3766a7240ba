package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"casual-jobs-connect/internal/models"
	"casual-jobs-connect/internal/services"
)

// ApplicationHandler handles job application endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply submits an application to a job for the acting worker. Any
// proposed rate in the body is ignored; the job's payment terms apply.
// POST /api/jobs/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	// The cover letter is optional, so an empty body is fine.
	var req struct {
		CoverLetter string `json:"cover_letter"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	application, err := h.applicationService.Apply(actor, jobID, req.CoverLetter, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    application,
	})
}

// MyApplications lists the acting worker's applications.
// GET /api/my-applications
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByApplicant(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    applications,
		"count":   len(applications),
	})
}

// ListForJob lists the applications to one of the acting employer's jobs.
// GET /api/jobs/:id/applications
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForJob(actor, jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    applications,
		"count":   len(applications),
	})
}

// Accept resolves an application in the applicant's favor.
// POST /api/applications/:id/accept
func (h *ApplicationHandler) Accept(c *gin.Context) {
	h.resolve(c, h.applicationService.Accept)
}

// Reject resolves an application against the applicant.
// POST /api/applications/:id/reject
func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.resolve(c, h.applicationService.Reject)
}

func (h *ApplicationHandler) resolve(c *gin.Context, op func(services.Actor, uint) (*models.JobApplication, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	applicationID, ok := paramID(c, "id")
	if !ok {
		return
	}

	application, err := op(actor, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    application,
	})
}

// Withdraw cancels the acting worker's own pending application.
// POST /api/applications/:id/withdraw
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	applicationID, ok := paramID(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.Withdraw(actor, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    application,
	})
}
