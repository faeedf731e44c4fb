package middleware

import (
	"net/http"

	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "userId"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// RequireAuth verifies the bearer token (header first, cookie fallback) and
// puts the resolved identity on the request context. Every verification
// failure is answered identically with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ValidateToken(utils.TokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin is RequireAuth plus a role check. A valid non-admin token is
// still a 401: the caller learns nothing about why.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ValidateToken(utils.TokenFromRequest(c))
		if err != nil || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}
