package controllers

import (
	"errors"
	"net/http"
	"strings"

	"villa-backend/config"
	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/attractions
func GetAttractions(c *gin.Context) {
	q := config.DB.Order("sort_order ASC, featured DESC, created_at DESC")

	if active, ok := boolQuery(c, "active"); ok {
		q = q.Where("is_active = ?", active)
	} else {
		q = q.Where("is_active = ?", true)
	}
	if featured, ok := boolQuery(c, "featured"); ok {
		q = q.Where("featured = ?", featured)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if limit := limitQuery(c); limit > 0 {
		q = q.Limit(limit)
	}

	var attractions []models.Attraction
	if err := q.Find(&attractions).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, attractions)
}

// GET /api/attractions/:id
func GetAttraction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attraction id")
		return
	}

	var attraction models.Attraction
	if err := config.DB.First(&attraction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Attraction not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, attraction)
}

// POST /api/admin/attractions
func CreateAttraction(c *gin.Context) {
	var attraction models.Attraction
	if err := c.ShouldBindJSON(&attraction); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	attraction.ID = 0
	if strings.TrimSpace(attraction.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name is required")
		return
	}

	if err := config.DB.Create(&attraction).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, attraction)
}

// PUT /api/admin/attractions/:id — partial merge
func UpdateAttraction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attraction id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var attraction models.Attraction
	if err := config.DB.First(&attraction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Attraction not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&attraction).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&attraction, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, attraction)
}

// DELETE /api/admin/attractions/:id
func DeleteAttraction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attraction id")
		return
	}

	res := config.DB.Delete(&models.Attraction{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Attraction not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
