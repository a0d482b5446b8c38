package handlers

import (
	"net/http"
	"testing"

	"writeflow-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func taskRouter() *gin.Engine {
	return protectedRouter(func(g *gin.RouterGroup) {
		g.GET("/api/tasks", GetTasks)
		g.GET("/api/tasks/:id", GetTaskByID)
		g.POST("/api/tasks", CreateTask)
		g.PATCH("/api/tasks/:id/status", UpdateTaskStatus)
	})
}

func TestCreateTask_Success(t *testing.T) {
	db := setupTestDB(t)
	seedWriter(t, db, "sarah-wilson", models.Performance{})

	r := taskRouter()
	w := doJSON(r, http.MethodPost, "/api/tasks", adminToken(t), map[string]any{
		"title":       "Blog Post: AI in Content Marketing",
		"description": "Write a comprehensive guide about AI tools",
		"wordCount":   2000,
		"assignedTo":  []string{"sarah-wilson"},
		"tags":        []string{"blog", "ai"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Task
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.StatusPending, created.Status)
	require.Equal(t, "admin", created.CreatedBy)
	require.Nil(t, created.SubmittedAt)
	require.Nil(t, created.ReviewedAt)
	require.Equal(t, models.StringList{"sarah-wilson"}, created.AssignedTo)
}

func TestCreateTask_ForbiddenForWriters(t *testing.T) {
	db := setupTestDB(t)
	seedWriter(t, db, "sarah-wilson", models.Performance{})

	r := taskRouter()
	w := doJSON(r, http.MethodPost, "/api/tasks", writerToken(t, "sarah-wilson"), map[string]any{
		"title":       "t",
		"description": "d",
		"assignedTo":  []string{"sarah-wilson"},
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateTask_ValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	seedWriter(t, db, "sarah-wilson", models.Performance{})
	r := taskRouter()

	// Missing title fails binding
	w := doJSON(r, http.MethodPost, "/api/tasks", adminToken(t), map[string]any{
		"description": "d",
		"assignedTo":  []string{"sarah-wilson"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Blank assignees fail core validation
	w = doJSON(r, http.MethodPost, "/api/tasks", adminToken(t), map[string]any{
		"title":       "t",
		"description": "d",
		"assignedTo":  []string{"  "},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_RejectsInactiveAssignee(t *testing.T) {
	db := setupTestDB(t)
	writer := seedWriter(t, db, "mike-chen", models.Performance{})
	writer.Status = models.WriterInactive
	require.NoError(t, db.Save(&writer).Error)

	r := taskRouter()
	w := doJSON(r, http.MethodPost, "/api/tasks", adminToken(t), map[string]any{
		"title":       "t",
		"description": "d",
		"assignedTo":  []string{"mike-chen"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTasks_WriterSeesOnlyOwnAssignments(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusPending, "sarah-wilson")
	seedTask(t, db, "t-2", models.StatusInProgress, "mike-chen")
	seedTask(t, db, "t-3", models.StatusSubmitted, "sarah-wilson", "mike-chen")

	r := taskRouter()
	w := doJSON(r, http.MethodGet, "/api/tasks?limit=50", writerToken(t, "sarah-wilson"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Total int           `json:"total"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 2, resp.Total)
	for _, task := range resp.Tasks {
		require.True(t, task.AssignedToWriter("sarah-wilson"))
	}
}

func TestGetTasks_FiltersAndPagination(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusPending, "sarah-wilson")
	seedTask(t, db, "t-2", models.StatusInProgress, "mike-chen")
	seedTask(t, db, "t-3", models.StatusPending, "mike-chen")

	r := taskRouter()
	w := doJSON(r, http.MethodGet, "/api/tasks?status=pending&limit=1&page=2", adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Count int           `json:"count"`
		Total int           `json:"total"`
		Page  int           `json:"page"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, 1, resp.Count)
	require.Equal(t, 2, resp.Page)
	require.Equal(t, models.StatusPending, resp.Tasks[0].Status)
}

func TestGetTaskByID_HiddenTasksLookMissing(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusPending, "mike-chen")

	r := taskRouter()

	w := doJSON(r, http.MethodGet, "/api/tasks/t-1", adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/tasks/t-1", writerToken(t, "sarah-wilson"), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTaskStatus_WriterSubmitsOwnTask(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusInProgress, "sarah-wilson")

	r := taskRouter()
	w := doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", writerToken(t, "sarah-wilson"), map[string]string{
		"status": "submitted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Task
	decodeBody(t, w, &updated)
	require.Equal(t, models.StatusSubmitted, updated.Status)
	require.NotNil(t, updated.SubmittedAt)
	firstStamp := *updated.SubmittedAt

	// Re-submitting must not move the stamp
	w = doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", writerToken(t, "sarah-wilson"), map[string]string{
		"status": "submitted",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &updated)
	require.NotNil(t, updated.SubmittedAt)
	require.True(t, updated.SubmittedAt.Equal(firstStamp))

	// And the stamp survives in the store
	var stored models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&stored).Error)
	require.NotNil(t, stored.SubmittedAt)
	require.True(t, stored.SubmittedAt.Equal(firstStamp))
}

func TestUpdateTaskStatus_WriterCannotApprove(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusSubmitted, "sarah-wilson")

	r := taskRouter()
	for _, status := range []string{"in-review", "approved"} {
		w := doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", writerToken(t, "sarah-wilson"), map[string]string{
			"status": status,
		})
		require.Equal(t, http.StatusForbidden, w.Code, status)
	}

	var stored models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&stored).Error)
	require.Equal(t, models.StatusSubmitted, stored.Status)
}

func TestUpdateTaskStatus_AdminReviewFlow(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusSubmitted, "sarah-wilson")

	r := taskRouter()
	w := doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", adminToken(t), map[string]string{
		"status": "in-review",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Task
	decodeBody(t, w, &updated)
	require.Equal(t, models.StatusInReview, updated.Status)
	require.NotNil(t, updated.ReviewedAt)

	w = doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", adminToken(t), map[string]string{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &updated)
	require.Equal(t, models.StatusApproved, updated.Status)
}

func TestUpdateTaskStatus_UnknownStatusRejected(t *testing.T) {
	db := setupTestDB(t)
	seedTask(t, db, "t-1", models.StatusPending, "sarah-wilson")

	r := taskRouter()
	w := doJSON(r, http.MethodPatch, "/api/tasks/t-1/status", adminToken(t), map[string]string{
		"status": "archived",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&stored).Error)
	require.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateTaskStatus_MissingTask(t *testing.T) {
	setupTestDB(t)
	r := taskRouter()
	w := doJSON(r, http.MethodPatch, "/api/tasks/nope/status", adminToken(t), map[string]string{
		"status": "approved",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
