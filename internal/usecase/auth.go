package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
	pkgAuth "github.com/polkiloo/userhub/internal/pkg/auth"
)

const (
	msgAddUserFailed      = "Problem while adding user"
	msgInvalidCredentials = "Invalid email or password"

	timingPlaceholder = "userhub-timing-placeholder"
)

var (
	errEmailNotRegistered = errors.New("email not registered")
	errWrongPassword      = errors.New("wrong password")
)

// AuthUseCase handles registration, login and token verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	logger *slog.Logger

	timingMu   sync.Mutex
	timingHash string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, logger *slog.Logger) *AuthUseCase {
	u := &AuthUseCase{users: users, hasher: hasher, tokens: strategy, logger: logger}
	u.dummyHash()
	return u
}

// Register validates the input and stores a new user with a hashed password.
// No token is issued.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Email = normalizeEmail(reg.Email)
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		return nil, domainErrors.Wrap(domainErrors.KindUnknown, msgAddUserFailed, fmt.Errorf("hash password: %w", err))
	}

	usr, err := u.users.Create(ctx, &model.User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.Wrap(domainErrors.KindRegistrationFailed, msgAddUserFailed, err)
		}
		return nil, storeFailure(msgAddUserFailed, err)
	}

	u.logger.Info("user registered", slog.String("user_id", usr.ID))
	return usr, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
// Unknown email and wrong password fail identically.
func (u *AuthUseCase) Authenticate(ctx context.Context, creds model.Credentials) (*model.User, string, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := validateCredentials(creds); err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", err
		}
		u.hasher.Verify(u.dummyHash(), creds.Password)
		u.logger.Warn("login rejected", slog.String("reason", errEmailNotRegistered.Error()))
		return nil, "", domainErrors.Wrap(domainErrors.KindInvalidCredentials, msgInvalidCredentials, errEmailNotRegistered)
	}

	if !u.hasher.Verify(usr.PasswordHash, creds.Password) {
		u.logger.Warn("login rejected",
			slog.String("reason", errWrongPassword.Error()),
			slog.String("user_id", usr.ID),
		)
		return nil, "", domainErrors.Wrap(domainErrors.KindInvalidCredentials, msgInvalidCredentials, errWrongPassword)
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// dummyHash is compared against when the email is unknown so both failure
// paths spend one hash verification. It is built at construction and rebuilt
// on the next call if hashing failed.
func (u *AuthUseCase) dummyHash() string {
	u.timingMu.Lock()
	defer u.timingMu.Unlock()
	if u.timingHash != "" {
		return u.timingHash
	}
	hash, err := u.hasher.Hash(timingPlaceholder)
	if err != nil {
		u.logger.Error("prepare timing hash", slog.String("error", err.Error()))
		return ""
	}
	u.timingHash = hash
	return hash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func storeFailure(message string, err error) error {
	kind := domainErrors.KindUnknown
	if errors.Is(err, domainErrors.ErrStoreUnavailable) {
		kind = domainErrors.KindStoreUnavailable
	}
	return domainErrors.Wrap(kind, message, err)
}
