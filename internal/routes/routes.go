package routes

import (
	"writeflow-api/internal/handlers"
	"writeflow-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "WriteFlow team API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Login endpoint
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Task endpoints
		protectedRoutes.GET("/tasks", handlers.GetTasks)
		protectedRoutes.GET("/tasks/:id", handlers.GetTaskByID)
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.PATCH("/tasks/:id/status", handlers.UpdateTaskStatus)
		// Writer endpoints
		protectedRoutes.GET("/writers", handlers.GetWriters)
		protectedRoutes.POST("/writers", handlers.CreateWriter)
		// Dashboard stats
		protectedRoutes.GET("/stats", handlers.GetStats)
		protectedRoutes.GET("/stats/weekly", handlers.GetWeeklyPerformance)
		protectedRoutes.GET("/reviews/pending", handlers.GetPendingReviews)
		// Task templates
		protectedRoutes.GET("/templates", handlers.GetTemplates)
		protectedRoutes.POST("/templates", handlers.CreateTemplate)
		// Live dashboard events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
