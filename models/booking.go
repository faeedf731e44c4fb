package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"uniqueIndex;size:64" json:"reference_code"`

	GuestName  string `gorm:"size:255" json:"guest_name"`
	GuestEmail string `gorm:"size:150" json:"guest_email"`
	GuestPhone string `gorm:"size:50" json:"guest_phone"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`

	// RoomID is nullable: an inquiry without a room means "any room".
	RoomID *uint `gorm:"index" json:"room_id"`
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	Guests  int    `gorm:"default:1" json:"guests"`
	Message string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:pending;index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
