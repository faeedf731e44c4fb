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

// GET /api/testimonials
func GetTestimonials(c *gin.Context) {
	q := config.DB.Order("sort_order ASC, featured DESC, rating DESC, created_at DESC")

	if active, ok := boolQuery(c, "active"); ok {
		q = q.Where("is_active = ?", active)
	} else {
		q = q.Where("is_active = ?", true)
	}
	if featured, ok := boolQuery(c, "featured"); ok {
		q = q.Where("featured = ?", featured)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(guest_name) LIKE ? OR LOWER(text) LIKE ?", like, like)
	}
	if limit := limitQuery(c); limit > 0 {
		q = q.Limit(limit)
	}

	var testimonials []models.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, testimonials)
}

// POST /api/admin/testimonials — shape validation runs in the middleware
func CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	testimonial.ID = 0
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}

	if err := config.DB.Create(&testimonial).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, testimonial)
}

// PUT /api/admin/testimonials/:id — partial merge
func UpdateTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&testimonial).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&testimonial, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, testimonial)
}

// DELETE /api/admin/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	res := config.DB.Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
