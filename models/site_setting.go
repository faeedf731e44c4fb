package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting is a singleton row holding the public site's contact block.
type SiteSetting struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Tagline  string `gorm:"size:500" json:"tagline"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"size:50" json:"phone"`
	Email    string `gorm:"size:150" json:"email"`
	Website  string `gorm:"size:255" json:"website"`
	Logo     string `gorm:"size:500" json:"logo"`
	HeroText string `gorm:"type:text" json:"hero_text"`

	// Social is a map of platform -> URL.
	Social datatypes.JSON `json:"social"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
