package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
)

// Module wires application services, the HTTP server, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewUserDirectoryFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 16 << 10
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
	Logger *slog.Logger
}

// newHTTPServer builds the userhub API server. net/http's own errors go to
// the service logger.
func newHTTPServer(p serverParams) *http.Server {
	server := &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}
	if p.Logger != nil {
		server.ErrorLog = slog.NewLogLogger(p.Logger.Handler(), slog.LevelError)
	}
	return server
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

// registerLifecycle serves the API in the background once the graph is up.
// A listener failure after start takes the whole process down with exit code 1.
func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("userhub api listening",
				slog.String("addr", p.Server.Addr),
				slog.Duration("read_header_timeout", p.Server.ReadHeaderTimeout),
			)
			go serve(p)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return drain(ctx, p)
		},
	})
}

func serve(p lifecycleParams) {
	err := p.Server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	p.Logger.Error("userhub api listener failed", slog.String("addr", p.Server.Addr), slog.String("error", err.Error()))
	_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
}

// drain stops accepting connections and waits for in-flight requests, bounded
// by ShutdownTimeout when ctx carries no deadline of its own.
func drain(ctx context.Context, p lifecycleParams) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
		defer cancel()
	}
	if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("drain userhub api: %w", err)
	}
	p.Logger.Info("userhub api drained")
	return nil
}
