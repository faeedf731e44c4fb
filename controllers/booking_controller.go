package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"villa-backend/models"
	"villa-backend/services"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
)

type createBookingPayload struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	RoomID     *uint  `json:"room_id"`
	Guests     int    `json:"guests"`
	Message    string `json:"message"`
}

type updateBookingStatusPayload struct {
	Status string `json:"status"`
}

type BookingController struct {
	Svc      *services.BookingService
	Notifier services.Notifier
}

func NewBookingController(svc *services.BookingService, notifier services.Notifier) *BookingController {
	return &BookingController{Svc: svc, Notifier: notifier}
}

func parseBookingDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ----------------------------------------------------
// POST /api/bookings — public inquiry. Shape validation
// already ran in the middleware; dates are parseable here.
// ----------------------------------------------------

func (ctrl *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkIn, err := parseBookingDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be a valid date")
		return
	}
	checkOut, err := parseBookingDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be a valid date")
		return
	}

	booking := models.Booking{
		GuestName:  payload.GuestName,
		GuestEmail: payload.GuestEmail,
		GuestPhone: payload.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		RoomID:     payload.RoomID,
		Guests:     payload.Guests,
		Message:    payload.Message,
	}

	if err := ctrl.Svc.Create(&booking); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown room")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save booking")
		return
	}

	// best-effort; a failed mail never fails the booking
	ctrl.Notifier.BookingCreated(booking)

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ----------------------------------------------------
// GET /api/bookings/:id — inquiry lookup by id
// ----------------------------------------------------

func (ctrl *BookingController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := ctrl.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ----------------------------------------------------
// GET /api/admin/bookings
// ----------------------------------------------------

func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.Svc.List(services.BookingFilter{
		Status: c.Query("status"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Search: c.Query("search"),
		Limit:  limitQuery(c),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// ----------------------------------------------------
// PUT /api/admin/bookings/:id/status
// ----------------------------------------------------

func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var payload updateBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := ctrl.Svc.UpdateStatus(id, payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Status must be pending, confirmed or cancelled")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ----------------------------------------------------
// DELETE /api/admin/bookings/:id
// ----------------------------------------------------

func (ctrl *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// ----------------------------------------------------
// GET /api/admin/bookings/export — .xlsx download
// ----------------------------------------------------

func (ctrl *BookingController) Export(c *gin.Context) {
	bookings, err := ctrl.Svc.List(services.BookingFilter{
		Status: c.Query("status"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	workbook, err := services.BuildBookingsWorkbook(bookings)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		// headers are already out; just log via gin's error list
		_ = c.Error(err)
	}
}
