package models

import (
	"time"

	"gorm.io/gorm"
)

// Attraction is a nearby point of interest shown on the public site.
type Attraction struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:100;index" json:"category"`
	Distance    string `gorm:"size:100" json:"distance"`
	Image       string `gorm:"size:500" json:"image"`
	Featured    bool   `gorm:"default:false" json:"featured"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
