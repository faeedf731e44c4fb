package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	GuestName     string `gorm:"size:255" json:"guest_name"`
	GuestLocation string `gorm:"size:255" json:"guest_location"`
	Rating        int    `gorm:"default:5" json:"rating"`
	Text          string `gorm:"type:text" json:"text"`
	StayDate      string `gorm:"size:100" json:"stay_date"`
	Featured      bool   `gorm:"default:false" json:"featured"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
	SortOrder     int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
