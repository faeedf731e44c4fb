package services

import (
	"errors"
	"strings"

	"villa-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// BookingService wraps *gorm.DB for booking inquiries.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create persists a new inquiry. Status always starts as pending; whatever
// the client sent for it is ignored.
func (s *BookingService) Create(booking *models.Booking) error {
	booking.ID = 0
	booking.Status = models.BookingPending
	booking.ReferenceCode = newReferenceCode()

	// A zero room id means "any room".
	if booking.RoomID != nil && *booking.RoomID == 0 {
		booking.RoomID = nil
	}
	if booking.RoomID != nil {
		var room models.Room
		if err := s.DB.First(&room, *booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
	}

	if booking.Guests < 1 {
		booking.Guests = 1
	}

	return s.DB.Create(booking).Error
}

type BookingFilter struct {
	Status string
	From   string
	To     string
	Search string
	Limit  int
}

func (s *BookingService) List(filter BookingFilter) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		q = q.Where("check_in >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("check_out <= ?", filter.To)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(guest_name) LIKE ? OR LOWER(guest_email) LIKE ? OR LOWER(reference_code) LIKE ?", like, like, like)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, ErrNotFound
	}
	return booking, err
}

// UpdateStatus moves a booking between pending/confirmed/cancelled.
func (s *BookingService) UpdateStatus(id uint, status string) (models.Booking, error) {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCancelled:
	default:
		return models.Booking{}, errors.New("invalid status")
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return booking, err
	}

	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return booking, err
	}
	booking.Status = status
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	res := s.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
