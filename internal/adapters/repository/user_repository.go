package repository

import (
	"context"
	"sync"

	"github.com/cognitiveflux/core/internal/domain/entities"
)

// UserRepository is the in-memory implementation of the user set.
// Usernames are unique, matched case-sensitively. Users are never deleted.
type UserRepository struct {
	mu    sync.RWMutex
	users []*entities.User
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create appends a new user. The username must not be taken.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return entities.ErrUsernameTaken
		}
	}

	dup := *user
	r.users = append(r.users, &dup)
	return nil
}

// GetByID returns a copy of the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			dup := *u
			return &dup, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// GetByUsername returns a copy of the user with the given username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			dup := *u
			return &dup, nil
		}
	}
	return nil, entities.ErrUserNotFound
}
