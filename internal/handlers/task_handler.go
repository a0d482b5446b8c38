package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"writeflow-api/internal/dashboard"
	"writeflow-api/internal/database"
	"writeflow-api/internal/middleware"
	"writeflow-api/internal/models"
	"writeflow-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	WordCount   int        `json:"wordCount"`
	Deadline    *time.Time `json:"deadline"`
	AssignedTo  []string   `json:"assignedTo" binding:"required"`
	Tags        []string   `json:"tags"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// taskFilters carries the optional list filters from the dashboard's
// filter panel.
type taskFilters struct {
	status   string
	assignee string
	tag      string
	search   string
	minWords int
	maxWords int
}

func (f taskFilters) match(t models.Task) bool {
	if f.status != "" && string(t.Status) != f.status {
		return false
	}
	if f.assignee != "" && !t.AssignedToWriter(f.assignee) {
		return false
	}
	if f.tag != "" && !t.Tags.Contains(f.tag) {
		return false
	}
	if f.search != "" {
		needle := strings.ToLower(f.search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if f.minWords > 0 && t.WordCount < f.minWords {
		return false
	}
	if f.maxWords > 0 && t.WordCount > f.maxWords {
		return false
	}
	return true
}

// loadTasks fetches every task ordered by creation time. Role filtering and
// list filters run in memory: the collections are small and assignees/tags
// live in JSON columns.
func loadTasks(db *gorm.DB, order string) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.Order(order).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func loadWriters(db *gorm.DB) ([]models.Writer, error) {
	var writers []models.Writer
	if err := db.Find(&writers).Error; err != nil {
		return nil, err
	}
	return writers, nil
}

// adminUserIDs lists account IDs with the admin role, for event fan-out.
func adminUserIDs(db *gorm.DB) []string {
	var ids []string
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Pluck("id", &ids)
	return ids
}

// notifyTaskEvent fans a task event out to the actor, every assignee, and
// all admin accounts.
func notifyTaskEvent(db *gorm.DB, eventType string, task models.Task, actorID string) {
	recipients := append([]string{actorID}, task.AssignedTo...)
	recipients = append(recipients, adminUserIDs(db)...)
	realtime.GetHub().Notify(recipients, realtime.Event{
		Type:    eventType,
		TaskID:  task.ID,
		Status:  task.Status,
		ActorID: actorID,
	})
}

/*
*
GetTasks handles GET /api/tasks
Returns the tasks visible to the authenticated viewer: all tasks for admins,
own assignments for writers. Optional filters: status, assignee, tag, search,
minWords, maxWords. Pagination: page (default 1), limit (default 5, max 100),
sort (asc|desc on created_at, default desc).
*/
func GetTasks(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "5")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "desc"))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 5
	}
	if limit > 100 {
		limit = 100
	}

	order := "created_at desc"
	if sortParam == "asc" {
		order = "created_at asc"
	}

	filters := taskFilters{
		status:   c.Query("status"),
		assignee: c.Query("assignee"),
		tag:      c.Query("tag"),
		search:   c.Query("search"),
	}
	filters.minWords, _ = strconv.Atoi(c.DefaultQuery("minWords", "0"))
	filters.maxWords, _ = strconv.Atoi(c.DefaultQuery("maxWords", "0"))

	all, err := loadTasks(database.GetDB(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	filtered := make([]models.Task, 0, len(all))
	for _, t := range dashboard.VisibleTasks(all, viewer) {
		if filters.match(t) {
			filtered = append(filtered, t)
		}
	}

	total := len(filtered)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	pageTasks := filtered[offset:end]

	c.JSON(http.StatusOK, gin.H{
		"tasks": pageTasks,
		"count": len(pageTasks), // number of items in this page
		"total": total,          // total visible tasks for current filter
		"page":  page,
		"limit": limit,
		"sort":  sortParam,
	})
}

// GetTaskByID handles GET /api/tasks/:id
// Returns a single task if it is visible to the viewer.
func GetTaskByID(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var task models.Task
	result := database.GetDB().Where("id = ?", taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	// Tasks outside the viewer's scope are indistinguishable from missing ones
	if len(dashboard.VisibleTasks([]models.Task{task}, viewer)) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

/*
*
CreateTask handles POST /api/tasks
Creates a new task. Admin capability required; every assignee must be an
existing active writer.
*/
func CreateTask(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	if !dashboard.CanPerformAction(viewer, dashboard.ActionCreateTask) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create tasks"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := dashboard.NewTask(dashboard.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		WordCount:   req.WordCount,
		Deadline:    req.Deadline,
		AssignedTo:  req.AssignedTo,
		Tags:        req.Tags,
	}, viewer, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only active writers are eligible for new assignments
	db := database.GetDB()
	for _, writerID := range task.AssignedTo {
		var assignee models.Writer
		if err := db.Where("id = ?", writerID).First(&assignee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown assignee: " + writerID})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate assignee"})
			}
			return
		}
		if assignee.Status != models.WriterActive || assignee.Role != models.RoleWriter {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee is not an active writer: " + writerID})
			return
		}
	}

	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	invalidateStatsCache()
	notifyTaskEvent(db, realtime.EventTaskCreated, task, viewer.ID)

	c.JSON(http.StatusCreated, task)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
// Moves a task through its lifecycle on behalf of the viewer. The lifecycle
// guard decides who may set what; first transitions into submitted/in-review
// stamp their timestamps.
func UpdateTaskStatus(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Viewer identity not found in token"})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var task models.Task
	result := db.Where("id = ?", taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if err := dashboard.ApplyStatus(&task, req.Status, viewer, time.Now()); err != nil {
		switch {
		case errors.Is(err, dashboard.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status: " + string(req.Status)})
		case errors.Is(err, dashboard.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to set this status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	if err := db.Model(&task).Select("status", "submitted_at", "reviewed_at").Updates(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	invalidateStatsCache()
	notifyTaskEvent(db, realtime.EventTaskStatusChanged, task, viewer.ID)

	c.JSON(http.StatusOK, task)
}
