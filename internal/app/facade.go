package app

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
	"github.com/polkiloo/userhub/internal/usecase"
)

// UserDirectoryFacade is the single entry point the HTTP layer talks to.
type UserDirectoryFacade struct {
	auth   *usecase.AuthUseCase
	users  *usecase.UserUseCase
	health repository.HealthChecker
}

func NewUserDirectoryFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase, health repository.HealthChecker) *UserDirectoryFacade {
	return &UserDirectoryFacade{auth: auth, users: users, health: health}
}

func (f *UserDirectoryFacade) Register(ctx context.Context, reg model.Registration) error {
	_, err := f.auth.Register(ctx, reg)
	return err
}

func (f *UserDirectoryFacade) Authenticate(ctx context.Context, creds model.Credentials) (*model.Profile, string, error) {
	usr, token, err := f.auth.Authenticate(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	profile := usr.Profile()
	return &profile, token, nil
}

func (f *UserDirectoryFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *UserDirectoryFacade) Users(ctx context.Context, req model.PageRequest) (*model.UserPage, error) {
	return f.users.List(ctx, req)
}

func (f *UserDirectoryFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
