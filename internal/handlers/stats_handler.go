package handlers

import (
	"net/http"
	"time"

	"writeflow-api/internal/cache"
	"writeflow-api/internal/dashboard"
	"writeflow-api/internal/database"
	"writeflow-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Derived dashboard figures are cached per viewer for a short window and
// dropped wholesale on any task or writer mutation. The derivations are
// cheap; the cache mainly absorbs dashboard polling.
const statsTTL = 30 * time.Second

type dashboardSnapshot struct {
	Stats  dashboard.Stats
	Weekly dashboard.WeeklySummary
}

var statsCache = cache.New[string, dashboardSnapshot]()

func invalidateStatsCache() {
	statsCache.Clear()
}

func snapshotFor(c *gin.Context) (dashboardSnapshot, bool) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return dashboardSnapshot{}, false
	}

	key := viewer.ID + ":" + string(viewer.Role)
	if snap, hit := statsCache.Get(key); hit {
		return snap, true
	}

	db := database.GetDB()
	tasks, err := loadTasks(db, "created_at asc")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return dashboardSnapshot{}, false
	}
	writers, err := loadWriters(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return dashboardSnapshot{}, false
	}

	visible := dashboard.VisibleTasks(tasks, viewer)
	snap := dashboardSnapshot{
		Stats:  dashboard.RoleStats(visible, writers, viewer),
		Weekly: dashboard.WeeklyPerformance(visible, writers, viewer),
	}
	statsCache.Set(key, snap, statsTTL)
	return snap, true
}

// GetStats handles GET /api/stats
// Returns the role-scoped summary counts; writer viewers also get their
// personal deadline and rating figures.
func GetStats(c *gin.Context) {
	snap, ok := snapshotFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.Stats)
}

// GetWeeklyPerformance handles GET /api/stats/weekly
// Returns team-wide weekly figures for admins, personal figures for writers.
func GetWeeklyPerformance(c *gin.Context) {
	snap, ok := snapshotFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.Weekly)
}

// GetPendingReviews handles GET /api/reviews/pending
// Returns submitted tasks awaiting review. Non-admin viewers get an empty list.
func GetPendingReviews(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	tasks, err := loadTasks(database.GetDB(), "created_at asc")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	pending := dashboard.PendingReviews(tasks, viewer)
	c.JSON(http.StatusOK, gin.H{
		"reviews": pending,
		"count":   len(pending),
	})
}
