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

// ----------------------------------------------------
// GET /api/rooms
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	q := config.DB.Order("sort_order ASC, created_at DESC")

	if active, ok := boolQuery(c, "active"); ok {
		q = q.Where("is_active = ?", active)
	} else {
		// public default: only active rooms
		q = q.Where("is_active = ?", true)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if limit := limitQuery(c); limit > 0 {
		q = q.Limit(limit)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/rooms/:idOrSlug
// ----------------------------------------------------

func GetRoom(c *gin.Context) {
	param := c.Param("id")

	var room models.Room
	var err error
	if id, ok := parseID(c); ok {
		err = config.DB.First(&room, id).Error
	} else {
		err = config.DB.Where("slug = ?", param).First(&room).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// POST /api/admin/rooms
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room.ID = 0
	room.Slug = strings.TrimSpace(room.Slug)

	if err := config.DB.Create(&room).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusBadRequest, "A room with this slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// PUT /api/admin/rooms/:id — partial merge, only keys
// present in the body are written
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	stripProtectedKeys(updateData)
	normalizeJSONColumns(updateData, "amenities", "images")

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&room).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&room, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/admin/rooms/:id
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	res := config.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
