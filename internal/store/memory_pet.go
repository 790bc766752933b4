package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
	"github.com/MKhiriev/go-pet-portal/models"
)

// memoryPetRepository keeps pets in insertion order.
type memoryPetRepository struct {
	mu     sync.RWMutex
	pets   []models.Pet
	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewMemoryPetRepository(ids utils.IDGenerator, logger *logger.Logger) PetRepository {
	logger.Debug().Msg("creating in-memory pet repository")
	return &memoryPetRepository{
		ids:    ids,
		logger: logger,
	}
}

// CreatePet assigns a fresh id and stores the pet. Fields are stored as sent.
func (r *memoryPetRepository) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if pet.OwnerEmail == "" {
		return models.Pet{}, ErrPetNotSaved
	}

	pet.ID = r.ids.Generate()

	r.mu.Lock()
	r.pets = append(r.pets, pet)
	r.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryPetRepository.CreatePet").
		Str("id", pet.ID).
		Str("owner", pet.OwnerEmail).
		Msg("pet created")
	return pet, nil
}

func (r *memoryPetRepository) ListPetsByOwner(_ context.Context, ownerEmail string) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]models.Pet, 0)
	for _, p := range r.pets {
		if p.OwnerEmail == ownerEmail {
			pets = append(pets, p)
		}
	}
	return pets, nil
}
