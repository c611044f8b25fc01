package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudblog-api/internal/config"
	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/service"
	"github.com/cloudblog-api/internal/storage"
	"github.com/cloudblog-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	blobs    storage.BlobStore
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, blobs storage.BlobStore, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		blobs:    blobs,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.services.Article.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	in, ok := h.bindArticleInput(c)
	if !ok {
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), currentUser(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Article created successfully.",
		"article": article,
	})
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	in, ok := h.bindArticleInput(c)
	if !ok {
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), currentUser(c), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Article updated successfully.",
		"article": article,
	})
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully."})
}

// Archive handles PUT /articles/:id/archive
func (h *ArticleHandler) Archive(c *gin.Context) {
	article, changed, err := h.services.Article.Archive(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Article archived successfully."
	if !changed {
		message = "Article is already archived."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "article": article})
}

// Publish handles PUT /articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	article, changed, err := h.services.Article.Publish(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Article published successfully."
	if !changed {
		message = "Article is already published."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "article": article})
}

// ListAdmin handles GET /admin/articles
func (h *ArticleHandler) ListAdmin(c *gin.Context) {
	articles, err := h.services.Article.ListAdmin(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ListMine handles GET /user/articles
func (h *ArticleHandler) ListMine(c *gin.Context) {
	articles, err := h.services.Article.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Stats handles GET /articles/stats
func (h *ArticleHandler) Stats(c *gin.Context) {
	stats, err := h.services.Article.AdminStats(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// bindArticleInput reads an article payload from either a multipart form
// (with an optional image part) or a JSON body. Tags arrive in whatever
// shape the client sends and leave here as the canonical slice. On failure
// the response has already been written and ok is false.
func (h *ArticleHandler) bindArticleInput(c *gin.Context) (*models.ArticleInput, bool) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.bindMultipart(c)
	}

	var req struct {
		Title     string          `json:"title"`
		Paragraph string          `json:"paragraph"`
		Tags      json.RawMessage `json:"tags"`
		Status    string          `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return nil, false
	}

	return &models.ArticleInput{
		Title:     req.Title,
		Paragraph: req.Paragraph,
		Tags:      normalizeRawTags(req.Tags),
		Status:    req.Status,
	}, true
}

func (h *ArticleHandler) bindMultipart(c *gin.Context) (*models.ArticleInput, bool) {
	in := &models.ArticleInput{
		Title:     c.PostForm("title"),
		Paragraph: c.PostForm("paragraph"),
		Tags:      validation.NormalizeTags(c.PostForm("tags")),
		Status:    c.PostForm("status"),
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// No image part; content-only update.
		return in, true
	}
	defer file.Close()

	if header.Size > h.cfg.Storage.MaxUploadSize {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors": gin.H{
				"image": fmt.Sprintf("The image may not be greater than %d kilobytes.", h.cfg.Storage.MaxUploadSize/1024),
			},
		})
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  gin.H{"image": "The image must be a file of type: jpg, jpeg, png, gif, webp, svg."},
		})
		return nil, false
	}

	url, err := h.blobs.Save(c.Request.Context(), ext, file)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to store uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store uploaded image."})
		return nil, false
	}

	in.ImageURL = url
	in.HasImage = true
	return in, true
}

// normalizeRawTags folds the JSON shapes of the tags field (array of
// strings, or a single string holding either a JSON array or a
// comma-separated list) into the canonical slice.
func normalizeRawTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return validation.NormalizeTags(s)
	}
	return validation.NormalizeTags(string(raw))
}
