package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig is a fixed-window limit applied per client IP + path.
// Name keeps stacked limiters (a group-wide one plus a stricter per-route
// one) counting in separate buckets.
type RateLimitConfig struct {
	Name        string
	Window      time.Duration
	MaxRequests int64
	Message     string
}

// RateStore counts hits per key within a fixed window. Implementations:
// MemoryStore (single process) and RedisStore (shared across instances).
type RateStore interface {
	// Incr records a hit and returns the count within the current window
	// together with the window's reset time. A fresh window starts at 1.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

type rateEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is a mutex-guarded map with a periodic sweep that removes
// expired entries to bound memory. The sweep has no correctness effect:
// expired entries are treated as fresh on the next Incr regardless.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry

	// nowFn is injectable so window expiry and the sweep are testable.
	nowFn func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*rateEntry),
		nowFn:   time.Now,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateEntry{count: 1, resetAt: now.Add(window)}
		s.entries[key] = entry
		return 1, entry.resetAt, nil
	}

	entry.count++
	return entry.count, entry.resetAt, nil
}

// Sweep drops entries whose window has already expired.
func (s *MemoryStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	for key, entry := range s.entries {
		if now.After(entry.resetAt) {
			delete(s.entries, key)
		}
	}
}

// StartSweeper runs Sweep on the given interval until ctx is cancelled.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// clientIP resolves the caller's address from proxy headers, in order:
// x-forwarded-for (first value), x-real-ip, cf-connecting-ip. Clients behind
// a proxy that sets none of these share the "unknown" bucket.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			fwd = fwd[:idx]
		}
		if ip := strings.TrimSpace(fwd); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit applies a fixed-window limit keyed by client IP + request path.
// Store errors fail open: a broken limiter must not take the site down.
func RateLimit(store RateStore, cfg RateLimitConfig) gin.HandlerFunc {
	message := cfg.Message
	if message == "" {
		message = "Too many requests, please try again later."
	}
	name := cfg.Name
	if name == "" {
		name = "global"
	}

	return func(c *gin.Context) {
		key := name + ":" + clientIP(c) + ":" + c.FullPath()

		count, _, err := store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			c.Next()
			return
		}

		if count > cfg.MaxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": message})
			return
		}
		c.Next()
	}
}
