package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/app"
	"github.com/polkiloo/userhub/internal/ratelimit"
	"github.com/polkiloo/userhub/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade  *app.UserDirectoryFacade
	Logger  *slog.Logger
	Limiter *ratelimit.Limiter `optional:"true"`
}

func newEngine(p engineParams) *gin.Engine {
	var limiter middleware.RateLimiter
	if p.Limiter != nil {
		limiter = p.Limiter
	}
	return Setup(p.Facade, p.Logger, limiter)
}
