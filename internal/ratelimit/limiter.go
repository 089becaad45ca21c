package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable reports that the counter backend could not be reached.
var ErrRedisUnavailable = errors.New("redis unavailable")

const keyPrefix = "userhub:rl:"

// Limiter is a fixed-window request counter keyed by client.
type Limiter struct {
	redis  redis.UniversalClient
	limit  int64
	window time.Duration
}

// New creates a Limiter allowing limit hits per window for every key.
func New(client redis.UniversalClient, limit int, window time.Duration) *Limiter {
	return &Limiter{redis: client, limit: int64(limit), window: window}
}

// Allow counts one hit for key and reports whether it fits the current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.incrementWithTTL(ctx, keyPrefix+key)
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}

// hitScript counts a hit and starts the window when the key has no expiry,
// in one step so a counter can never be left without a TTL.
var hitScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

func (l *Limiter) incrementWithTTL(ctx context.Context, key string) (int64, error) {
	count, err := hitScript.Run(ctx, l.redis, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return count, nil
}
