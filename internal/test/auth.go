package test

import (
	"context"
	"sync/atomic"

	"github.com/polkiloo/userhub/internal/domain/model"
	pkgAuth "github.com/polkiloo/userhub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn   func(string) (string, error)
	VerifyFn func(string, string) bool
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Verify validates password against stored hash.
func (h HasherStub) Verify(hash, password string) bool {
	if h.VerifyFn != nil {
		return h.VerifyFn(hash, password)
	}
	return hash == "hash:"+password
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token:" + userID, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) > len("token:") && token[:len("token:")] == "token:" {
		return token[len("token:"):], nil
	}
	return "", pkgAuth.ErrInvalidToken
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract and counts calls.
type TokenParserStub struct {
	ID      string
	Err     error
	ParseFn func(string) (string, error)
	calls   atomic.Int32
}

// ParseToken either delegates to override or returns predefined result.
func (s *TokenParserStub) ParseToken(token string) (string, error) {
	s.calls.Add(1)
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.ID, nil
}

// Calls reports how many tokens were parsed.
func (s *TokenParserStub) Calls() int {
	return int(s.calls.Load())
}

// UserDirectoryFacadeStub simulates facade interactions for HTTP layer tests.
type UserDirectoryFacadeStub struct {
	RegisterFn     func(context.Context, model.Registration) error
	AuthenticateFn func(context.Context, model.Credentials) (*model.Profile, string, error)
	ParseFn        func(string) (string, error)
	UsersFn        func(context.Context, model.PageRequest) (*model.UserPage, error)
	HealthFn       func(context.Context) error
}

// Register succeeds unless overridden.
func (s UserDirectoryFacadeStub) Register(ctx context.Context, reg model.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return nil
}

// Authenticate returns a token for any credentials unless overridden.
func (s UserDirectoryFacadeStub) Authenticate(ctx context.Context, creds model.Credentials) (*model.Profile, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, creds)
	}
	return &model.Profile{ID: "u-1", Email: creds.Email}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s UserDirectoryFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "u-1", nil
}

// Users returns an empty first page unless overridden.
func (s UserDirectoryFacadeStub) Users(ctx context.Context, req model.PageRequest) (*model.UserPage, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, req)
	}
	return &model.UserPage{Users: []model.Profile{}, CurrentPage: req.Page}, nil
}

// Health reports a healthy store unless overridden.
func (s UserDirectoryFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
