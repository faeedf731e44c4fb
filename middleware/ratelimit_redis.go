package middleware

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs the rate limiter with a shared Redis instance so the
// limit holds across horizontally scaled replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	// Set the window expiry only when the key is created; NX keeps the
	// window fixed rather than sliding on every hit.
	if count == 1 {
		if err := s.client.PExpire(ctx, k, window).Err(); err != nil {
			return count, time.Time{}, err
		}
	}

	ttl, err := s.client.PTTL(ctx, k).Result()
	if err != nil {
		return count, time.Time{}, err
	}
	return count, time.Now().Add(ttl), nil
}
