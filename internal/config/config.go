package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	JWTSecret         string
	TokenTTL          time.Duration
	BcryptCost        int
	DBConnectAttempts int
	DBConnectTimeout  time.Duration
	DBRetryDelay      time.Duration
	MaxPageLimit      int
	RedisAddress      string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
	LogLevel          string
}

const (
	defaultRunAddress        = ":5000"
	defaultJWTSecret         = "change-me-in-production"
	defaultTokenTTL          = 24 * time.Hour
	defaultBcryptCost        = 10
	defaultDBConnectAttempts = 5
	defaultDBConnectTimeout  = 5 * time.Second
	defaultDBRetryDelay      = 5 * time.Second
	defaultMaxPageLimit      = 100
	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = 15 * time.Minute
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		BcryptCost:        getInt(lookup, "BCRYPT_COST", defaultBcryptCost),
		DBConnectAttempts: getInt(lookup, "DB_CONNECT_ATTEMPTS", defaultDBConnectAttempts),
		DBConnectTimeout:  getDuration(lookup, "DB_CONNECT_TIMEOUT", defaultDBConnectTimeout),
		DBRetryDelay:      getDuration(lookup, "DB_RETRY_DELAY", defaultDBRetryDelay),
		MaxPageLimit:      getInt(lookup, "MAX_PAGE_LIMIT", defaultMaxPageLimit),
		RedisAddress:      getString(lookup, "REDIS_ADDRESS", ""),
		RateLimitRequests: getInt(lookup, "RATE_LIMIT_REQUESTS", defaultRateLimitRequests),
		RateLimitWindow:   getDuration(lookup, "RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("userhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		dbTimeoutStr       = cfg.DBConnectTimeout.String()
		dbRetryDelayStr    = cfg.DBRetryDelay.String()
		rateWindowStr      = cfg.RateLimitWindow.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor")
	fs.IntVar(&cfg.DBConnectAttempts, "db-attempts", cfg.DBConnectAttempts, "Database connection attempts at startup")
	fs.StringVar(&dbTimeoutStr, "db-timeout", dbTimeoutStr, "Wait per database connection attempt")
	fs.StringVar(&dbRetryDelayStr, "db-retry-delay", dbRetryDelayStr, "Delay between database connection attempts")
	fs.IntVar(&cfg.MaxPageLimit, "max-page-limit", cfg.MaxPageLimit, "Upper bound for the users page size")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for rate limiting, empty disables it")
	fs.IntVar(&cfg.RateLimitRequests, "rate-limit", cfg.RateLimitRequests, "Requests allowed per client within a window")
	fs.StringVar(&rateWindowStr, "rate-window", rateWindowStr, "Rate limiting window")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.DBConnectTimeout, err = time.ParseDuration(dbTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid db timeout: %w", err)
	}

	if cfg.DBRetryDelay, err = time.ParseDuration(dbRetryDelayStr); err != nil {
		return nil, fmt.Errorf("invalid db retry delay: %w", err)
	}

	if cfg.RateLimitWindow, err = time.ParseDuration(rateWindowStr); err != nil {
		return nil, fmt.Errorf("invalid rate window: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimRight(string(content), "\r\n")
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = defaultBcryptCost
	}

	if cfg.DBConnectAttempts <= 0 {
		cfg.DBConnectAttempts = defaultDBConnectAttempts
	}

	if cfg.DBConnectTimeout <= 0 {
		cfg.DBConnectTimeout = defaultDBConnectTimeout
	}

	if cfg.DBRetryDelay <= 0 {
		cfg.DBRetryDelay = defaultDBRetryDelay
	}

	if cfg.MaxPageLimit <= 0 {
		cfg.MaxPageLimit = defaultMaxPageLimit
	}

	if cfg.RateLimitRequests <= 0 {
		cfg.RateLimitRequests = defaultRateLimitRequests
	}

	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = defaultRateLimitWindow
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
