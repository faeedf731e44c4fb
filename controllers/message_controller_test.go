package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"villa-backend/models"

	"github.com/stretchr/testify/require"
)

func TestContactFlow(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t, db)

	w := doJSON(r, http.MethodPost, "/api/contact", "", map[string]interface{}{
		"name":    "  Jane <Doe>  ",
		"email":   "jane@example.com",
		"subject": "Transfers",
		"message": "Do you offer airport transfers?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Message
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))
	require.Equal(t, models.MessageUnread, created.Status)
	// sanitizer ran before storage
	require.Equal(t, "Jane Doe", created.Name)

	// admin can filter unread
	w = doJSON(r, http.MethodGet, "/api/admin/messages?status=unread", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msgs []models.Message
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &msgs))
	require.Len(t, msgs, 1)

	// mark read
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/messages/%d/read", created.ID), token, map[string]bool{"read": true})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Message
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.Equal(t, models.MessageRead, stored.Status)
}

func TestContact_ValidationErrorsListed(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contact", "", map[string]interface{}{
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.False(t, env.Success)
	require.GreaterOrEqual(t, len(env.Details), 3) // name, email, message all reported
}

func TestSiteSettings_PartialUpdate(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t, db)

	require.NoError(t, db.Create(&models.SiteSetting{Name: "Villa Serena", Phone: "+66 1234 5678"}).Error)

	w := doJSON(r, http.MethodPut, "/api/admin/settings", token, map[string]interface{}{
		"tagline": "A quiet place by the sea",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.SiteSetting
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "Villa Serena", stored.Name)
	require.Equal(t, "+66 1234 5678", stored.Phone)
	require.Equal(t, "A quiet place by the sea", stored.Tagline)

	// public read
	w = doJSON(r, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
