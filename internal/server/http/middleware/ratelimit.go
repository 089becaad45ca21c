package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
)

// RateLimiter counts a hit for key and reports whether it is allowed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. Limiter failures let the request through.
func RateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error("rate limiter unavailable", slog.String("error", err.Error()))
			c.Next()
			return
		}
		if !allowed {
			abortWith(c, domainErrors.New(domainErrors.KindRateLimited, "Too many requests, please try again later."))
			return
		}
		c.Next()
	}
}
