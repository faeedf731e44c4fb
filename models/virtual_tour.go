package models

import (
	"time"

	"gorm.io/gorm"
)

type VirtualTour struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	EmbedURL    string `gorm:"size:500" json:"embed_url"`
	Thumbnail   string `gorm:"size:500" json:"thumbnail"`
	Category    string `gorm:"size:100;index" json:"category"`
	Featured    bool   `gorm:"default:false" json:"featured"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
