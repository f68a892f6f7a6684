package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
)

// handleError translates service errors into HTTP responses. Validation
// failures are client errors; anything unrecognized is logged and hidden
// behind a 500.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	var missingRef *model.MissingReferenceError
	var invalidPhoto *model.InvalidPhotoError

	switch {
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.As(err, &missingRef):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": missingRef.Error()})
	case errors.As(err, &invalidPhoto):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalidPhoto.Error()})
	default:
		log.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
