package handlers

import (
	"errors"
	"net/http"

	"writeflow-api/internal/auth"
	"writeflow-api/internal/database"
	"writeflow-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string      `json:"token"`
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Message  string      `json:"message"`
}

// Login handles the login endpoint (demo authentication)
// POST /api/login
//
// Known accounts must present their password; unknown usernames are
// auto-provisioned as writer accounts. The issued token carries the
// account's role, which drives every role-scoped view downstream.
func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. Username and password are required.",
		})
		return
	}

	db := database.GetDB()

	var user models.User
	err := db.Where("username = ?", req.Username).First(&user).Error
	switch {
	case err == nil:
		if !auth.VerifyPassword(req.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := auth.HashPassword(req.Password)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		user = models.User{
			ID:       uuid.NewString(),
			Username: req.Username,
			Password: hash,
			Name:     req.Username,
			Role:     models.RoleWriter,
		}
		if createErr := db.Create(&user).Error; createErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Message:  "Login successful",
	})
}
