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

// GET /api/tours
func GetVirtualTours(c *gin.Context) {
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
	if limit := limitQuery(c); limit > 0 {
		q = q.Limit(limit)
	}

	var tours []models.VirtualTour
	if err := q.Find(&tours).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tours)
}

// GET /api/tours/:id
func GetVirtualTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tour id")
		return
	}

	var tour models.VirtualTour
	if err := config.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tour)
}

// POST /api/admin/tours
func CreateVirtualTour(c *gin.Context) {
	var tour models.VirtualTour
	if err := c.ShouldBindJSON(&tour); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tour.ID = 0
	if strings.TrimSpace(tour.EmbedURL) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Embed URL is required")
		return
	}

	if err := config.DB.Create(&tour).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tour)
}

// PUT /api/admin/tours/:id — partial merge
func UpdateVirtualTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tour id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var tour models.VirtualTour
	if err := config.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&tour).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&tour, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tour)
}

// DELETE /api/admin/tours/:id
func DeleteVirtualTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tour id")
		return
	}

	res := config.DB.Delete(&models.VirtualTour{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Tour not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
