package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"villa-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupRouter(t)

	payload := map[string]interface{}{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "supersecret",
		"role":     "admin",
	}

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &body))
	require.NotEmpty(t, body.Token)
	// role from the payload is never honored
	require.Equal(t, models.RoleUser, body.User.Role)

	// same email again: refused, and exactly one account exists
	w = doJSON(r, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "jane@example.com").Count(&count)
	require.EqualValues(t, 1, count)

	// login with the right and wrong password
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "jane@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "jane@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": "Jane", "email": "jane@example.com", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
