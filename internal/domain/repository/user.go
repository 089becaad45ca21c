package repository

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserRepository describes persistence operations for users.
// Create must reject a duplicate email with errors.ErrAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, offset, limit int) ([]model.User, int64, error)
}

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
