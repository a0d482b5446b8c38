package middleware

import (
	"net/http"
	"strings"

	"writeflow-api/internal/auth"
	"writeflow-api/internal/models"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates JWT token in Authorization header
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set: allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			c.Abort()
			return
		}

		// Validate token
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Store the viewer identity in context for use in handlers
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("viewer", claims.Viewer())

		c.Next()
	}
}

// CurrentViewer extracts the viewer identity stored by JWTAuthMiddleware.
func CurrentViewer(c *gin.Context) (models.Viewer, bool) {
	v, ok := c.Get("viewer")
	if !ok {
		return models.Viewer{}, false
	}
	viewer, ok := v.(models.Viewer)
	return viewer, ok
}
