package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidationError returns the full list of field errors, not just the first.
func JSONValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(400, gin.H{"success": false, "error": "Validation failed", "details": errs})
}
