package repositories

import (
	"context"
	"strings"
	"sync"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepository() UserRepository {
	return &userRepository{
		users: make(map[string]models.User),
	}
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[strings.ToLower(user.Email)] = *user
	return nil
}
