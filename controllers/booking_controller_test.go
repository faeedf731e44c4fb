package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"villa-backend/models"

	"github.com/stretchr/testify/require"
)

func TestCreateAndFetchBooking(t *testing.T) {
	r, db := setupRouter(t)

	room := models.Room{Slug: "sea-view", Name: "Sea View Suite", Price: 180, IsActive: true}
	require.NoError(t, db.Create(&room).Error)

	w := doJSON(r, http.MethodPost, "/api/bookings", "", map[string]interface{}{
		"guest_name":  "Jane Doe",
		"guest_email": "jane@example.com",
		"check_in":    "2025-06-01",
		"check_out":   "2025-06-03",
		"room_id":     room.ID,
		"guests":      2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var created models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)
	require.Equal(t, models.BookingPending, created.Status)
	require.True(t, strings.HasPrefix(created.ReferenceCode, "BK-"))

	// fetch it back
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/bookings/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Booking
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &fetched))
	require.Equal(t, "Jane Doe", fetched.GuestName)
	require.Equal(t, created.CheckIn.Format("2006-01-02"), fetched.CheckIn.Format("2006-01-02"))
	require.Equal(t, created.CheckOut.Format("2006-01-02"), fetched.CheckOut.Format("2006-01-02"))
}

func TestCreateBooking_RejectsBadDates(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", "", map[string]interface{}{
		"guest_name":  "Jane Doe",
		"guest_email": "jane@example.com",
		"check_in":    "2025-06-03",
		"check_out":   "2025-06-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.False(t, env.Success)

	var fields []string
	for _, d := range env.Details {
		fields = append(fields, d.Field)
	}
	require.Contains(t, fields, "check_out")
}

func TestCreateBooking_RejectsMissingEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", "", map[string]interface{}{
		"guest_name": "Jane Doe",
		"check_in":   "2025-06-01",
		"check_out":  "2025-06-03",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var fields []string
	for _, d := range decodeEnvelope(t, w).Details {
		fields = append(fields, d.Field)
	}
	require.Contains(t, fields, "guest_email")
}

func TestAdminBookingStatusFlow(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t, db)

	booking := models.Booking{
		ReferenceCode: "BK-TEST0001",
		GuestName:     "Jane Doe",
		GuestEmail:    "jane@example.com",
		Status:        models.BookingPending,
	}
	require.NoError(t, db.Create(&booking).Error)

	// no token
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d/status", booking.ID), "", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// confirm
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d/status", booking.ID), token, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	require.Equal(t, models.BookingConfirmed, stored.Status)

	// invalid status
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d/status", booking.ID), token, map[string]string{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactSubmitRateLimited(t *testing.T) {
	r, _ := setupRouter(t)

	payload := map[string]interface{}{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Is the pool heated?",
	}

	// submission routes allow 5 per window per client
	for i := 0; i < 5; i++ {
		w := doJSON(r, http.MethodPost, "/api/contact", "", payload)
		require.Equal(t, http.StatusCreated, w.Code, "request %d", i+1)
	}

	w := doJSON(r, http.MethodPost, "/api/contact", "", payload)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.False(t, decodeEnvelope(t, w).Success)
}
