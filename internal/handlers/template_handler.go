package handlers

import (
	"net/http"
	"strings"

	"writeflow-api/internal/dashboard"
	"writeflow-api/internal/database"
	"writeflow-api/internal/middleware"
	"writeflow-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTemplateRequest represents the payload for a reusable task template
type CreateTemplateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	WordCount   int      `json:"wordCount"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

// GetTemplates handles GET /api/templates
func GetTemplates(c *gin.Context) {
	var templates []models.TaskTemplate
	if err := database.GetDB().Order("title asc").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"count":     len(templates),
	})
}

// CreateTemplate handles POST /api/templates
// Admin capability required; template titles must be unique (case-insensitive).
func CreateTemplate(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	if !dashboard.CanPerformAction(viewer, dashboard.ActionCreateTask) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create templates"})
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var duplicates int64
	if err := db.Model(&models.TaskTemplate{}).
		Where("LOWER(title) = ?", strings.ToLower(req.Title)).
		Count(&duplicates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate template"})
		return
	}
	if duplicates > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A template with this title already exists"})
		return
	}

	tags := make(models.StringList, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	template := models.TaskTemplate{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		WordCount:   req.WordCount,
		Tags:        tags,
		Category:    req.Category,
	}
	if err := db.Create(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, template)
}
