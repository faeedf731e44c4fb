package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug  string `gorm:"uniqueIndex;size:200" json:"slug"`
	Title string `gorm:"size:255" json:"title"`

	Excerpt string `gorm:"type:text" json:"excerpt"`
	// Content is stored as HTML. The sanitizer strips script/iframe/event
	// handlers on the way in; it is best-effort, not a full HTML sanitizer.
	Content       string `gorm:"type:text" json:"content"`
	FeaturedImage string `gorm:"size:500" json:"featured_image"`
	Author        string `gorm:"size:150" json:"author"`

	IsPublished bool       `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`

	CategoryID *uint         `gorm:"index" json:"category_id"`
	Category   *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
