package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/models"
)

// memoryUserRepository keeps dev server accounts in a map keyed by email.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	logger *logger.Logger
}

func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return models.User{}, ErrUserAlreadyExists
	}
	r.users[user.Email] = user

	logger.FromContext(ctx).Debug().Str("func", "*memoryUserRepository.CreateUser").Str("email", user.Email).Msg("user created")
	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; !ok {
		return models.User{}, ErrNoUserWasFound
	}
	r.users[user.Email] = user

	logger.FromContext(ctx).Debug().Str("func", "*memoryUserRepository.UpdateUser").Str("email", user.Email).Msg("user updated")
	return user, nil
}
