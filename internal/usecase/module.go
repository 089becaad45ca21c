package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newUserUseCase,
)

func newUserUseCase(users repository.UserRepository, cfg *config.Config) *UserUseCase {
	return NewUserUseCase(users, cfg.MaxPageLimit)
}
