package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casual-jobs-connect/internal/auth"
	"casual-jobs-connect/internal/services"
)

var validationErrors = []error{
	services.ErrInvalidWorkTime,
	services.ErrInvalidPayment,
	services.ErrInvalidCategory,
	services.ErrInvalidStatus,
	services.ErrInvalidPriority,
	services.ErrInvalidPayType,
	services.ErrInvalidWorkers,
	services.ErrJobNotOpen,
	services.ErrJobStarted,
	services.ErrAlreadyApplied,
	services.ErrPositionsFilled,
	services.ErrNotWithdrawable,
	services.ErrAlreadyResolved,
	services.ErrInvalidRole,
	services.ErrUsernameTaken,
	services.ErrEmailTaken,
	services.ErrPhoneTaken,
	services.ErrInvalidComplaint,
	services.ErrEmptySkillName,
}

// respondError maps service errors onto the HTTP taxonomy: 404 for
// missing or unowned records, 403 for capability failures, 400 for
// validation, 401 for bad credentials, 500 for everything else.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrEmployerOnly),
		errors.Is(err, services.ErrWorkerOnly),
		errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		for _, verr := range validationErrors {
			if errors.Is(err, verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requireActor builds the service actor from the authenticated claims.
// Returns false (and responds 401) when the claims are missing.
func requireActor(c *gin.Context) (services.Actor, bool) {
	userID, okID := auth.GetUserID(c)
	role, okRole := auth.GetRole(c)
	if !okID || !okRole {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return services.Actor{}, false
	}
	return services.Actor{ID: userID, Role: role}, true
}

// optionalActor builds the service actor when the request carried a
// valid token, nil otherwise.
func optionalActor(c *gin.Context) *services.Actor {
	userID, okID := auth.GetUserID(c)
	role, okRole := auth.GetRole(c)
	if !okID || !okRole {
		return nil
	}
	return &services.Actor{ID: userID, Role: role}
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
