package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"villa-backend/config"
	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ----------------------------------------------------
// Posts
// ----------------------------------------------------

// GET /api/blog — public list, published only unless ?published=false
// (the admin router mounts the same handler behind auth).
func GetBlogPosts(c *gin.Context) {
	q := config.DB.Preload("Category").Order("published_at DESC, created_at DESC")

	if published, ok := boolQuery(c, "published"); ok {
		q = q.Where("is_published = ?", published)
	} else if !strings.HasPrefix(c.FullPath(), "/api/admin") {
		q = q.Where("is_published = ?", true)
	}
	if category := c.Query("category"); category != "" {
		q = q.Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.slug = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", like, like)
	}
	if limit := limitQuery(c); limit > 0 {
		q = q.Limit(limit)
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, posts)
}

// GET /api/blog/:idOrSlug
func GetBlogPost(c *gin.Context) {
	param := c.Param("id")

	var post models.BlogPost
	var err error
	if id, ok := parseID(c); ok {
		err = config.DB.Preload("Category").First(&post, id).Error
	} else {
		err = config.DB.Preload("Category").Where("slug = ?", param).First(&post).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, post)
}

// POST /api/admin/blog
func CreateBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post.ID = 0
	post.Slug = strings.TrimSpace(post.Slug)
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := config.DB.Create(&post).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusBadRequest, "A post with this slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, post)
}

// PUT /api/admin/blog/:id — partial merge
func UpdateBlogPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var post models.BlogPost
	if err := config.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// first publish stamps published_at
	if v, ok := updateData["is_published"].(bool); ok && v && post.PublishedAt == nil {
		updateData["published_at"] = time.Now()
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&post).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.Preload("Category").First(&post, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, post)
}

// DELETE /api/admin/blog/:id
func DeleteBlogPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	res := config.DB.Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Post not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// ----------------------------------------------------
// Categories
// ----------------------------------------------------

// GET /api/blog/categories — includes the derived post count
func GetBlogCategories(c *gin.Context) {
	q := config.DB.Order("name ASC")
	if active, ok := boolQuery(c, "active"); ok {
		q = q.Where("is_active = ?", active)
	}

	var categories []models.BlogCategory
	if err := q.Find(&categories).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range categories {
		config.DB.Model(&models.BlogPost{}).
			Where("category_id = ?", categories[i].ID).
			Count(&categories[i].PostCount)
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

// POST /api/admin/blog/categories
func CreateBlogCategory(c *gin.Context) {
	var category models.BlogCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category.ID = 0
	category.Slug = strings.TrimSpace(category.Slug)
	if category.Slug == "" || category.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name and slug are required")
		return
	}

	if err := config.DB.Create(&category).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusBadRequest, "A category with this slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

// PUT /api/admin/blog/categories/:id — partial merge
func UpdateBlogCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stripProtectedKeys(updateData)

	var category models.BlogCategory
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Category not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&category).Updates(updateData).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := config.DB.First(&category, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

// DELETE /api/admin/blog/categories/:id — refused while posts still
// reference the category; nothing cascades.
func DeleteBlogCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var postCount int64
	if err := config.DB.Model(&models.BlogPost{}).Where("category_id = ?", id).Count(&postCount).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if postCount > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Category still has posts; move or delete them first")
		return
	}

	res := config.DB.Delete(&models.BlogCategory{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Category not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
