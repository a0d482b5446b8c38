package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"writeflow-api/internal/auth"
	"writeflow-api/internal/database"
	"writeflow-api/internal/middleware"
	"writeflow-api/internal/models"
	"writeflow-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB installs a fresh in-memory DB as the package-global connection
// and resets the stats cache between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	invalidateStatsCache()
	return db
}

func seedWriter(t *testing.T, db *gorm.DB, id string, perf models.Performance) models.Writer {
	t.Helper()
	writer := models.Writer{
		ID:          id,
		Name:        id,
		Email:       id + "@company.com",
		Role:        models.RoleWriter,
		Status:      models.WriterActive,
		Performance: perf,
	}
	require.NoError(t, db.Create(&writer).Error)
	return writer
}

func seedTask(t *testing.T, db *gorm.DB, id string, status models.TaskStatus, assignees ...string) models.Task {
	t.Helper()
	task := models.Task{
		ID:          id,
		Title:       "Task " + id,
		Description: "Description for " + id,
		WordCount:   1000,
		AssignedTo:  models.StringList(assignees),
		Status:      status,
		CreatedBy:   "admin",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(models.User{ID: "admin", Username: "admin", Name: "Alex Chen", Role: models.RoleAdmin})
	require.NoError(t, err)
	return token
}

func writerToken(t *testing.T, writerID string) string {
	t.Helper()
	token, err := auth.GenerateToken(models.User{ID: writerID, Username: writerID, Name: writerID, Role: models.RoleWriter})
	require.NoError(t, err)
	return token
}

// doJSON performs an authenticated JSON request against a router wired with
// the JWT middleware and the given handler routes.
func doJSON(router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func protectedRouter(register func(r *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	g := r.Group("")
	g.Use(middleware.JWTAuthMiddleware())
	register(g)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
