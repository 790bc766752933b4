package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/adapter"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, logger: logger}
}

func (s *clientProfileService) GetProfile(ctx context.Context, cred models.Credential) (models.UserProfile, error) {
	if !cred.Present() {
		return models.UserProfile{}, ErrMissingCredential
	}

	profile, err := s.adapter.GetUser(ctx, cred.Email)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return profile, nil
}

func (s *clientProfileService) UpdateProfile(ctx context.Context, cred models.Credential, profile models.UserProfile) (models.UserProfile, error) {
	if !cred.Present() {
		return models.UserProfile{}, ErrMissingCredential
	}

	updated, err := s.adapter.UpdateUser(ctx, cred.Email, profile)
	if err != nil {
		s.logger.Err(err).Str("email", cred.Email).Msg("failed to update profile")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	s.logger.Info().Str("email", cred.Email).Msg("profile updated")
	return updated, nil
}
