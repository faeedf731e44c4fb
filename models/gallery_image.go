package models

import (
	"time"

	"gorm.io/gorm"
)

type GalleryImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:255" json:"title"`
	Alt       string `gorm:"size:255" json:"alt"`
	URL       string `gorm:"size:500" json:"url"`
	Category  string `gorm:"size:100;index" json:"category"`
	Featured  bool   `gorm:"default:false" json:"featured"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
