package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Slug is the human-routable key used by the public site (/rooms/:slug).
	Slug string `gorm:"uniqueIndex;size:150" json:"slug"`
	Name string `gorm:"size:255" json:"name"`

	ShortDescription string `gorm:"type:text" json:"short_description"`
	Description      string `gorm:"type:text" json:"description"`

	Capacity int     `gorm:"default:2" json:"capacity"`
	Beds     string  `gorm:"size:100" json:"beds"`
	Price    float64 `json:"price"`

	// JSON columns: list of amenity strings / image URLs.
	Amenities datatypes.JSON `json:"amenities"`
	Images    datatypes.JSON `json:"images"`

	IsActive  bool `gorm:"default:true" json:"is_active"`
	SortOrder int  `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
