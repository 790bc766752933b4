package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/store"
	"github.com/MKhiriev/go-pet-portal/internal/validators"
	"github.com/MKhiriev/go-pet-portal/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, email string) (models.User, error) {
	if err := u.validator.Validate(ctx, models.User{Email: email}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// UpdateUser replaces every profile field. The email is the key and is
// never changed.
func (u *userService) UpdateUser(ctx context.Context, email string, profile models.UserProfile) (models.User, error) {
	target := models.User{UserProfile: profile, Email: email}
	if err := u.validator.Validate(ctx, target, validators.FieldEmail); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.UpdateUser(ctx, target)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}
