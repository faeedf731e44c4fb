package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(store RateStore, max int64, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(store, RateLimitConfig{Window: window, MaxRequests: max}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doGet(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_FixedWindow(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.nowFn = func() time.Time { return current }

	r := newLimitedRouter(store, 5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, doGet(r, "203.0.113.7").Code, "request %d", i+1)
	}

	// 6th inside the window is denied
	require.Equal(t, http.StatusTooManyRequests, doGet(r, "203.0.113.7").Code)

	// window elapses, counter resets
	current = current.Add(15*time.Minute + time.Second)
	require.Equal(t, http.StatusOK, doGet(r, "203.0.113.7").Code)
}

func TestRateLimit_KeyedPerIP(t *testing.T) {
	store := NewMemoryStore()
	r := newLimitedRouter(store, 1, 15*time.Minute)

	require.Equal(t, http.StatusOK, doGet(r, "203.0.113.7").Code)
	require.Equal(t, http.StatusTooManyRequests, doGet(r, "203.0.113.7").Code)

	// a different client has its own bucket
	require.Equal(t, http.StatusOK, doGet(r, "198.51.100.1").Code)
}

func TestRateLimit_MissingHeadersShareUnknownBucket(t *testing.T) {
	store := NewMemoryStore()
	r := newLimitedRouter(store, 1, 15*time.Minute)

	require.Equal(t, http.StatusOK, doGet(r, "").Code)
	require.Equal(t, http.StatusTooManyRequests, doGet(r, "").Code)
}

func TestMemoryStore_Sweep(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.nowFn = func() time.Time { return current }

	_, _, err := store.Incr(context.Background(), "a:/x", time.Minute)
	require.NoError(t, err)
	_, _, err = store.Incr(context.Background(), "b:/x", time.Hour)
	require.NoError(t, err)
	require.Len(t, store.entries, 2)

	current = current.Add(2 * time.Minute)
	store.Sweep()

	require.Len(t, store.entries, 1)
	_, ok := store.entries["b:/x"]
	require.True(t, ok)
}

func TestClientIPPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded first value", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "1.2.3.4"},
		{"real ip fallback", map[string]string{"X-Real-IP": "9.9.9.9"}, "9.9.9.9"},
		{"cloudflare fallback", map[string]string{"CF-Connecting-IP": "8.8.4.4"}, "8.8.4.4"},
		{"nothing", nil, "unknown"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		require.Equal(t, tc.want, clientIP(c), tc.name)
	}
}
