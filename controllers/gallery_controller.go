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

// GET /api/gallery
func GetGalleryImages(c *gin.Context) {
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

	var images []models.GalleryImage
	if err := q.Find(&images).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

// POST /api/admin/gallery
func CreateGalleryImage(c *gin.Context) {
	var image models.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	image.ID = 0
	if strings.TrimSpace(image.URL) == "" {
		utils.JSONError(c, http.StatusBadRequest, "URL is required")
		return
	}

	if err := config.DB.Create(&image).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, image)
}

// PUT /api/admin/gallery/:id — partial merge
func UpdateGalleryImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid image id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var image models.GalleryImage
	if err := config.DB.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Image not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&image).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&image, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, image)
}

// DELETE /api/admin/gallery/:id
func DeleteGalleryImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid image id")
		return
	}

	res := config.DB.Delete(&models.GalleryImage{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Image not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
