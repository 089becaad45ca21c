package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/server/http/handlers"
	"github.com/polkiloo/userhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. A nil limiter
// disables rate limiting.
func Setup(facade handlers.UserDirectoryFacade, logger *slog.Logger, limiter middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	_ = engine.SetTrustedProxies(nil)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))
	engine.Use(middleware.ErrorHandler(logger))
	if limiter != nil {
		engine.Use(middleware.RateLimit(limiter, logger))
	}

	homeHandler := handlers.NewHomeHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)
	usersHandler := handlers.NewUsersHandler(facade)

	engine.GET("/", homeHandler.Hello)
	engine.GET("/healthz", homeHandler.Health)

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := engine.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("/users", usersHandler.List)

	return engine
}
