package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserRepositoryStub stores users in-memory, in insertion order, for tests.
type UserRepositoryStub struct {
	Err error

	mu    sync.Mutex
	users []model.User
	next  int
	calls int
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.next++
	created := *user
	created.ID = fmt.Sprintf("user-%d", s.next)
	created.CreatedAt = time.Now()
	s.users = append(s.users, created)
	return &created, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns a slice of stored users and the total count.
func (s *UserRepositoryStub) List(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, 0, s.Err
	}
	total := int64(len(s.users))
	if offset >= len(s.users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(s.users) {
		end = len(s.users)
	}
	page := make([]model.User, end-offset)
	copy(page, s.users[offset:end])
	return page, total, nil
}

// Calls reports how many repository methods were invoked.
func (s *UserRepositoryStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// HealthCheckerStub reports configured store health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
