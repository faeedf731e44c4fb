package controllers

import (
	"errors"
	"net/http"

	"villa-backend/models"
	"villa-backend/services"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type markReadPayload struct {
	Read bool `json:"read"`
}

type MessageController struct {
	Svc      *services.MessageService
	Notifier services.Notifier
}

func NewMessageController(svc *services.MessageService, notifier services.Notifier) *MessageController {
	return &MessageController{Svc: svc, Notifier: notifier}
}

// POST /api/contact — public contact form
func (ctrl *MessageController) Create(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	msg := models.Message{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Body:    payload.Message,
	}
	if err := ctrl.Svc.Create(&msg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	ctrl.Notifier.ContactReceived(msg)

	utils.JSONSuccess(c, http.StatusCreated, msg)
}

// GET /api/admin/messages
func (ctrl *MessageController) List(c *gin.Context) {
	msgs, err := ctrl.Svc.List(c.Query("status"), c.Query("search"), limitQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msgs)
}

// GET /api/admin/messages/:id
func (ctrl *MessageController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	msg, err := ctrl.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Message not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msg)
}

// PUT /api/admin/messages/:id/read
func (ctrl *MessageController) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	payload := markReadPayload{Read: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	msg, err := ctrl.Svc.MarkRead(id, payload.Read)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Message not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msg)
}

// DELETE /api/admin/messages/:id
func (ctrl *MessageController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Message not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
