package usecase

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	msgListFailed = "Failed to retrieve users"
)

// UserUseCase serves the paginated user directory.
type UserUseCase struct {
	users    repository.UserRepository
	maxLimit int
}

// NewUserUseCase constructs UserUseCase. maxLimit bounds the page size.
func NewUserUseCase(users repository.UserRepository, maxLimit int) *UserUseCase {
	return &UserUseCase{users: users, maxLimit: maxLimit}
}

// Normalize replaces missing or non-positive values with defaults and clamps the limit.
func (u *UserUseCase) Normalize(req model.PageRequest) model.PageRequest {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}
	if u.maxLimit > 0 && req.Limit > u.maxLimit {
		req.Limit = u.maxLimit
	}
	return req
}

// List returns one page of public profiles with pagination metadata.
func (u *UserUseCase) List(ctx context.Context, req model.PageRequest) (*model.UserPage, error) {
	req = u.Normalize(req)

	users, total, err := u.users.List(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, storeFailure(msgListFailed, err)
	}

	profiles := make([]model.Profile, 0, len(users))
	for _, usr := range users {
		profiles = append(profiles, usr.Profile())
	}

	return &model.UserPage{
		Users:       profiles,
		TotalUsers:  total,
		TotalPages:  model.TotalPages(total, req.Limit),
		CurrentPage: req.Page,
	}, nil
}
