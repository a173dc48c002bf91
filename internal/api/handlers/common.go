package handlers

import (
	"net/http"

	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the uniform error envelope.
// Unrecognized errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var status int
	message := err.Error()

	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
		logger.New().WithField("path", c.FullPath()).Errorf("unhandled error: %v", err)
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}
