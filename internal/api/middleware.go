package api

import (
	"net/http"
	"strings"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ctxUserKey  = "currentUser"
	ctxTokenKey = "accessToken"
)

// requireAuth rejects requests without a valid bearer token. The resolved
// user and token land in the gin context for handlers.
func requireAuth(auth service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, err := resolveBearer(c, auth)
		if err != nil {
			log.Error().Err(err).Msg("Token lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		if user.Status != models.UserStatusActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Your account has been deactivated."})
			return
		}
		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// optionalAuth resolves a bearer token when present but lets anonymous
// requests through. Visibility-sensitive reads use this.
func optionalAuth(auth service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, err := resolveBearer(c, auth)
		if err != nil {
			log.Error().Err(err).Msg("Token lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}
		if user != nil && user.Status == models.UserStatusActive {
			c.Set(ctxUserKey, user)
			c.Set(ctxTokenKey, token)
		}
		c.Next()
	}
}

func resolveBearer(c *gin.Context, auth service.AuthService) (*models.User, *models.AccessToken, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil, nil
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, nil, nil
	}
	plaintext := strings.TrimSpace(header[len(prefix):])
	if plaintext == "" {
		return nil, nil, nil
	}
	return auth.Authenticate(c.Request.Context(), plaintext)
}

// currentUser returns the authenticated user, or nil for anonymous requests
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUserKey); ok {
		return v.(*models.User)
	}
	return nil
}

// currentToken returns the access token backing this request
func currentToken(c *gin.Context) *models.AccessToken {
	if v, ok := c.Get(ctxTokenKey); ok {
		return v.(*models.AccessToken)
	}
	return nil
}
