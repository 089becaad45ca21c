package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/app"
	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/logger"
	"github.com/polkiloo/userhub/internal/pkg/auth"
	"github.com/polkiloo/userhub/internal/ratelimit"
	"github.com/polkiloo/userhub/internal/server/http/router"
	"github.com/polkiloo/userhub/internal/storage/postgres"
	"github.com/polkiloo/userhub/internal/usecase"
)

// Module assembles the application graph. opts are appended last so callers
// can replace providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		ratelimit.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
