package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"villa-backend/models"
	"villa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextUserEmail)})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expiredAdminToken(t *testing.T, secret string) string {
	t.Helper()
	claims := utils.Claims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAdminRouter()

	// no token
	require.Equal(t, http.StatusUnauthorized, getWithToken(r, "").Code)

	// expired token
	require.Equal(t, http.StatusUnauthorized, getWithToken(r, expiredAdminToken(t, "test-secret")).Code)

	// valid token, wrong role
	userToken, err := utils.IssueToken(models.User{ID: 2, Email: "user@x.y", Role: models.RoleUser})
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, getWithToken(r, userToken).Code)

	// valid admin token
	adminToken, err := utils.IssueToken(models.User{ID: 1, Email: "admin@x.y", Role: models.RoleAdmin})
	require.NoError(t, err)
	resp := getWithToken(r, adminToken)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "admin@x.y")
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetUint(ContextUserID)})
	})

	token, err := utils.IssueToken(models.User{ID: 9, Email: "u@x.y", Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "9")
}
