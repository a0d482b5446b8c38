package handlers

import (
	"net/http"

	"writeflow-api/internal/dashboard"
	"writeflow-api/internal/database"
	"writeflow-api/internal/middleware"
	"writeflow-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// CreateWriterRequest represents the request payload for adding a writer
type CreateWriterRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Bio       string   `json:"bio"`
	Expertise []string `json:"expertise"`
	TeamTags  []string `json:"teamTags"`
}

// GetWriters returns the writer profiles visible to the viewer:
// admins see the whole writing team, writers see themselves plus the admins.
// GET /api/writers
func GetWriters(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	writers, err := loadWriters(database.GetDB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch writers"})
		return
	}

	visible := dashboard.VisibleWriters(writers, viewer)
	c.JSON(http.StatusOK, gin.H{
		"writers": visible,
		"count":   len(visible),
	})
}

// CreateWriter handles POST /api/writers
// Adds a writer profile. Admin capability required; role is always forced to
// writer and performance starts zeroed.
func CreateWriter(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	if !dashboard.CanPerformAction(viewer, dashboard.ActionManageWriters) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can manage writers"})
		return
	}

	var req CreateWriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	writer, err := dashboard.NewWriter(dashboard.WriterInput{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Expertise: req.Expertise,
		TeamTags:  req.TeamTags,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	if err := db.Create(&writer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create writer"})
		return
	}

	invalidateStatsCache()
	realtime.GetHub().Notify(append([]string{viewer.ID}, adminUserIDs(db)...), realtime.Event{
		Type:    realtime.EventWriterAdded,
		ActorID: viewer.ID,
	})

	c.JSON(http.StatusCreated, writer)
}
