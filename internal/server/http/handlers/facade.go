package handlers

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, reg model.Registration) error
	Authenticate(ctx context.Context, creds model.Credentials) (*model.Profile, string, error)
	ParseToken(token string) (string, error)
}

// DirectoryFacade serves the paginated user list.
type DirectoryFacade interface {
	Users(ctx context.Context, req model.PageRequest) (*model.UserPage, error)
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// UserDirectoryFacade aggregates the full set of operations used across handlers.
type UserDirectoryFacade interface {
	AuthFacade
	DirectoryFacade
	HealthFacade
}
