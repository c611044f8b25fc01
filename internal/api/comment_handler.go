package api

import (
	"net/http"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListForArticle handles GET /articles/:id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	comments, err := h.services.Comment.ListForArticle(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /articles/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), currentUser(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment submitted for moderation.",
		"comment": comment,
	})
}

// Update handles PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), currentUser(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated and resubmitted for moderation.",
		"comment": comment,
	})
}

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully."})
}

// Report handles PUT /comments/:id/report. Reporting an already reported
// comment answers success without mutating anything.
func (h *CommentHandler) Report(c *gin.Context) {
	comment, newly, err := h.services.Comment.Report(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Comment reported."
	if !newly {
		message = "Comment was already reported."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "comment": comment})
}

// Moderate handles PUT /comments/:id/moderate
func (h *CommentHandler) Moderate(c *gin.Context) {
	var req models.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	comment, err := h.services.Comment.Moderate(c.Request.Context(), currentUser(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Comment " + comment.Status + ".",
		"comment": comment,
	})
}

// ResolveReport handles PUT /comments/:id/report-toggle. The moderation
// status survives; only the reported flag is cleared.
func (h *CommentHandler) ResolveReport(c *gin.Context) {
	comment, err := h.services.Comment.ResolveReport(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Report resolved.",
		"comment": comment,
	})
}

// Dashboard handles GET /admin/comments
func (h *CommentHandler) Dashboard(c *gin.Context) {
	filter := &models.CommentFilter{
		Status:    c.Query("status"),
		ArticleID: c.Query("article_id"),
		Search:    c.Query("search"),
	}

	dashboard, err := h.services.Comment.Dashboard(c.Request.Context(), currentUser(c), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
