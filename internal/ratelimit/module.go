package ratelimit

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
)

// Module provides a *Limiter, or nil when no Redis address is configured.
var Module = fx.Options(
	fx.Provide(newLimiter),
)

type limiterParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newLimiter(p limiterParams) *Limiter {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	p.Logger.Info("rate limiting enabled",
		slog.String("redis", p.Config.RedisAddress),
		slog.Int("requests", p.Config.RateLimitRequests),
		slog.Duration("window", p.Config.RateLimitWindow),
	)
	return New(client, p.Config.RateLimitRequests, p.Config.RateLimitWindow)
}
