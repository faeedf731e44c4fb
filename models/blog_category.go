package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogCategory struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Slug     string `gorm:"uniqueIndex;size:150" json:"slug"`
	Name     string `gorm:"size:150" json:"name"`
	Color    string `gorm:"size:20" json:"color"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// PostCount is derived on read, not stored.
	PostCount int64 `gorm:"-" json:"post_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
