package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// Message is a contact-form submission.
type Message struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:255" json:"subject"`
	Body    string `gorm:"column:message;type:text" json:"message"`
	Status  string `gorm:"size:20;default:unread;index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
