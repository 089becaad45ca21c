package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/userhub/internal/config"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, limit, window), mr
}

func TestAllowWithinLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllowKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllowSetsWindowOnFirstHit(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2, 15*time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, mr.TTL(keyPrefix+"10.0.0.1"))

	mr.FastForward(5 * time.Minute)
	_, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+"10.0.0.1"), "later hits must not extend the window")
}

func TestAllowRepairsCounterWithoutWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2, time.Minute)
	key := keyPrefix + "10.0.0.1"
	require.NoError(t, mr.Set(key, "500"))
	require.Equal(t, time.Duration(0), mr.TTL(key))

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(time.Minute + time.Second)

	allowed, err = limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllowResetsAfterWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllowRedisDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	assert.False(t, allowed)
	assert.True(t, errors.Is(err, ErrRedisUnavailable))
}

func TestNewLimiterDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	limiter := newLimiter(limiterParams{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	assert.Nil(t, limiter)
}

func TestNewLimiterEnabled(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	limiter := newLimiter(limiterParams{
		Lifecycle: lc,
		Config: &config.Config{
			RedisAddress:      mr.Addr(),
			RateLimitRequests: 2,
			RateLimitWindow:   time.Minute,
		},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	require.NotNil(t, limiter)

	lc.RequireStart()
	allowed, err := limiter.Allow(context.Background(), "10.0.0.9")
	require.NoError(t, err)
	assert.True(t, allowed)
	lc.RequireStop()
}
