package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func limitQuery(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// boolQuery returns the parsed flag and whether it was present at all.
func boolQuery(c *gin.Context, key string) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// protected columns no partial update may touch
var protectedKeys = []string{"id", "created_at", "updated_at", "deleted_at", "reference_code"}

func stripProtectedKeys(updateData map[string]interface{}) {
	for _, k := range protectedKeys {
		delete(updateData, k)
	}
}

// normalizeJSONColumns re-marshals array/object values destined for JSON
// columns so GORM writes them as datatypes.JSON instead of failing on a
// []interface{}.
func normalizeJSONColumns(updateData map[string]interface{}, keys ...string) {
	for _, k := range keys {
		v, ok := updateData[k]
		if !ok || v == nil {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			delete(updateData, k)
			continue
		}
		updateData[k] = datatypes.JSON(raw)
	}
}
