package ratelimit

import (
	"context"
	"fmt"
	"time"

	"portfoliogo/internal/redis"
)

// Redis is a Limiter backed by a TTL'd redis counter, shared across
// instances. The key expires one window after its first increment, which
// gives the same count-from-first-request semantics as the in-process
// limiter.
type Redis struct {
	client *redis.Client
	prefix string
	window time.Duration
	max    int
}

// NewRedis builds a redis-backed limiter. The prefix namespaces keys so the
// contact and chat limiters do not collide.
func NewRedis(client *redis.Client, prefix string, window time.Duration, max int) *Redis {
	return &Redis{client: client, prefix: prefix, window: window, max: max}
}

// Allow increments the counter for key and reports whether the request may
// proceed. Errors are returned to the caller; the services treat a limiter
// failure as an internal error rather than silently waving requests through.
func (r *Redis) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)
	count, err := r.client.Incr(ctx, redisKey)
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window); err != nil {
			return Decision{}, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	if count > int64(r.max) {
		return Decision{Allowed: false, Remaining: 0}, nil
	}
	return Decision{Allowed: true, Remaining: r.max - int(count)}, nil
}
