package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/adapter"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/models"
)

type clientPetService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientPetService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPetService {
	return &clientPetService{adapter: serverAdapter, logger: logger}
}

// CreatePet sends pet as entered. No field is checked or trimmed.
func (s *clientPetService) CreatePet(ctx context.Context, cred models.Credential, pet models.Pet) (models.Pet, error) {
	if !cred.Present() {
		return models.Pet{}, ErrMissingCredential
	}

	pet.ID = ""
	pet.OwnerEmail = cred.Email

	created, err := s.adapter.CreatePet(ctx, pet)
	if err != nil {
		s.logger.Err(err).Str("owner", cred.Email).Msg("failed to add pet")
		return models.Pet{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	s.logger.Info().Str("owner", cred.Email).Str("id", created.ID).Msg("pet added")
	return created, nil
}
