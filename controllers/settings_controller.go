package controllers

import (
	"errors"
	"net/http"

	"villa-backend/config"
	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/settings — public contact block for the site footer
func GetSiteSettings(c *gin.Context) {
	var setting models.SiteSetting
	if err := config.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONSuccess(c, http.StatusOK, models.SiteSetting{})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// PUT /api/admin/settings — partial merge on the singleton row, creating it
// on first write
func UpdateSiteSettings(c *gin.Context) {
	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	stripProtectedKeys(updateData)
	normalizeJSONColumns(updateData, "social")

	var setting models.SiteSetting
	err := config.DB.First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if err := config.DB.Create(&setting).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&setting).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&setting, setting.ID).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
