package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/store"
	"github.com/MKhiriev/go-pet-portal/internal/validators"
	"github.com/MKhiriev/go-pet-portal/models"
)

type petService struct {
	petRepository store.PetRepository
	validator     validators.Validator
	logger        *logger.Logger
}

func NewPetService(petRepository store.PetRepository, logger *logger.Logger) PetService {
	return &petService{
		petRepository: petRepository,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// CreatePet requires an owner and no id. Other fields are stored as sent.
func (p *petService) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if err := p.validator.Validate(ctx, pet, validators.FieldOwnerEmail, validators.FieldPetIDForCreation); err != nil {
		return models.Pet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := p.petRepository.CreatePet(ctx, pet)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner", pet.OwnerEmail).Msg("pet creation ended with error")
		return models.Pet{}, fmt.Errorf("create pet: %w", err)
	}

	return created, nil
}
