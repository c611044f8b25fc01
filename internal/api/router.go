package api

import (
	"net/http"
	"time"

	"github.com/cloudblog-api/internal/config"
	"github.com/cloudblog-api/internal/service"
	"github.com/cloudblog-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, blobs storage.BlobStore, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, blobs, cfg, log)
	commentHandler := NewCommentHandler(services, log)
	userHandler := NewUserHandler(services, log)

	authed := requireAuth(services.Auth, log)
	maybeAuthed := optionalAuth(services.Auth, log)

	// Health check
	router.GET("/health", healthCheck)

	// Uploaded images
	router.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)

	// Public
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/articles", articleHandler.List)
	router.GET("/articles/:id", maybeAuthed, articleHandler.Get)
	router.GET("/articles/:id/comments", maybeAuthed, commentHandler.ListForArticle)

	// Authenticated
	auth := router.Group("", authed)
	{
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/user", authHandler.Me)
		auth.PUT("/user/profile", authHandler.UpdateProfile)
		auth.GET("/user/articles", articleHandler.ListMine)

		auth.POST("/articles", articleHandler.Create)
		auth.PUT("/articles/:id", articleHandler.Update)
		auth.DELETE("/articles/:id", articleHandler.Delete)
		auth.PUT("/articles/:id/archive", articleHandler.Archive)
		auth.PUT("/articles/:id/publish", articleHandler.Publish)
		auth.GET("/articles/stats", articleHandler.Stats)
		auth.GET("/admin/articles", articleHandler.ListAdmin)

		auth.POST("/articles/:id/comments", commentHandler.Create)
		auth.PUT("/comments/:id", commentHandler.Update)
		auth.DELETE("/comments/:id", commentHandler.Delete)
		auth.PUT("/comments/:id/report", commentHandler.Report)
		auth.PUT("/comments/:id/moderate", commentHandler.Moderate)
		auth.PUT("/comments/:id/report-toggle", commentHandler.ResolveReport)
		auth.GET("/admin/comments", commentHandler.Dashboard)

		auth.GET("/users", userHandler.List)
		auth.POST("/users", userHandler.Create)
		auth.GET("/users/:id", userHandler.Get)
		auth.PUT("/users/:id", userHandler.Update)
		auth.DELETE("/users/:id", userHandler.Delete)
		auth.PUT("/users/:id/status", userHandler.ToggleStatus)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "cloudblog-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
