package services

import (
	"errors"
	"strings"

	"villa-backend/models"

	"gorm.io/gorm"
)

type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

func (s *MessageService) Create(msg *models.Message) error {
	msg.ID = 0
	msg.Status = models.MessageUnread
	return s.DB.Create(msg).Error
}

func (s *MessageService) List(status, search string, limit int) ([]models.Message, error) {
	q := s.DB.Order("created_at DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ?", like, like, like)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var msgs []models.Message
	err := q.Find(&msgs).Error
	return msgs, err
}

func (s *MessageService) GetByID(id uint) (models.Message, error) {
	var msg models.Message
	err := s.DB.First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return msg, ErrNotFound
	}
	return msg, err
}

// MarkRead flips the read flag; reading a message in the back office calls this.
func (s *MessageService) MarkRead(id uint, read bool) (models.Message, error) {
	msg, err := s.GetByID(id)
	if err != nil {
		return msg, err
	}

	status := models.MessageUnread
	if read {
		status = models.MessageRead
	}
	if err := s.DB.Model(&msg).Update("status", status).Error; err != nil {
		return msg, err
	}
	msg.Status = status
	return msg, nil
}

func (s *MessageService) Delete(id uint) error {
	res := s.DB.Delete(&models.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
