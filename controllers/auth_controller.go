package controllers

import (
	"errors"
	"net/http"
	"strings"

	"villa-backend/config"
	"villa-backend/middleware"
	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.IssueToken(user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Register creates a regular user account. Admins are seeded, never
// self-registered: the role field of the payload is ignored.
func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || len(payload.Password) < 8 {
		utils.JSONError(c, http.StatusBadRequest, "Email and a password of at least 8 characters are required")
		return
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		utils.JSONError(c, http.StatusBadRequest, "An account with this email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Name:     strings.TrimSpace(payload.Name),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := utils.IssueToken(user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated identity as resolved by the auth middleware.
func Me(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
