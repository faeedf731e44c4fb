package utils

import (
	"testing"
	"time"

	"villa-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: 7, Email: "admin@villa.local", Role: models.RoleAdmin}
	token, err := IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "admin@villa.local", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateToken_Failures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: 1, Email: "a@b.c", Role: models.RoleUser}
	valid, err := IssueToken(user)
	require.NoError(t, err)

	expired := Claims{
		UserID: 1,
		Email:  "a@b.c",
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"tampered":     valid + "x",
		"expired":      expiredToken,
		"wrong secret": mustSign(t, "other-secret"),
	}

	// every failure collapses to the same error
	for name, token := range cases {
		_, err := ValidateToken(token)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
