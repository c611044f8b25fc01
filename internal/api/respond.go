package api

import (
	"errors"
	"net/http"

	"github.com/cloudblog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors onto the HTTP surface. Authorization
// denials all collapse to one 403 body; the internal reason only reaches
// the log.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	if ve, ok := service.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  ve.Fields,
		})
		return
	}
	if fe, ok := service.AsForbidden(err); ok {
		log.Debug().
			Str("path", c.Request.URL.Path).
			Str("reason", string(fe.Reason)).
			Msg("Request forbidden")
		c.JSON(http.StatusForbidden, gin.H{"message": "This action is unauthorized."})
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found."})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  gin.H{"email": "The provided credentials are incorrect."},
		})
	case errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"message": "Your account has been deactivated."})
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	}
}
