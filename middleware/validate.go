package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"villa-backend/utils"

	"github.com/gin-gonic/gin"
)

// ValidateBody parses the JSON body, runs the validator against the raw
// payload, then replaces the request body with the sanitized version so the
// handler only ever sees cleaned input. GET requests pass through untouched.
// A nil validator sanitizes without shape checks.
func ValidateBody(validator utils.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unable to read request body"})
			return
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON payload"})
			return
		}

		if validator != nil {
			if errs := validator(payload); len(errs) > 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   "Validation failed",
					"details": errs,
				})
				return
			}
		}

		sanitized, err := json.Marshal(utils.SanitizeMap(payload))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON payload"})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(sanitized))
		c.Request.ContentLength = int64(len(sanitized))
		c.Next()
	}
}
