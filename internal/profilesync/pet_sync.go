package profilesync

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
)

const (
	PetAddedMessage     = "Pet added successfully"
	PetAddFailedMessage = "Failed to add pet"
)

// PetSaveResult is the outcome of a pet save operation.
type PetSaveResult struct {
	Submitted models.Pet
	Created   models.Pet
	Err       error
}

// PetSaveOp performs the create request for a captured snapshot.
type PetSaveOp func(ctx context.Context) PetSaveResult

// PetSync is the creation variant: the add-pet form.
type PetSync struct {
	notifier

	cred   models.Credential
	record models.Pet

	pets   service.ClientPetService
	logger *logger.Logger
}

// NewPetSync builds the add-pet form state for cred. With a present
// credential the owner is filled in right away; without one every field
// starts empty.
func NewPetSync(cred models.Credential, pets service.ClientPetService, logger *logger.Logger) *PetSync {
	p := &PetSync{
		cred:   cred,
		pets:   pets,
		logger: logger,
	}
	p.Initialize(context.Background())
	return p
}

// Initialize derives the owner from the credential. It issues no request.
func (p *PetSync) Initialize(_ context.Context) {
	if p.cred.Present() {
		p.record.OwnerEmail = p.cred.Email
	}
}

// Credential returns the credential the form was built with.
func (p *PetSync) Credential() models.Credential {
	return p.cred
}

// Record returns a copy of the form's current values.
func (p *PetSync) Record() models.Pet {
	return p.record
}

// SetField stores value as entered. OwnerEmail cannot be set.
func (p *PetSync) SetField(field, value string) error {
	switch field {
	case models.PetFieldName:
		p.record.Name = value
	case models.PetFieldSpecies:
		p.record.Species = value
	case models.PetFieldBreed:
		p.record.Breed = value
	case models.PetFieldAge:
		p.record.Age = value
	case models.PetFieldNotes:
		p.record.Notes = value
	case models.PetFieldOwnerEmail:
		return ErrReadOnlyField
	default:
		return ErrUnknownField
	}
	return nil
}

// Save captures the current record and returns the operation that submits
// it. Without a credential the operation fails with
// service.ErrMissingCredential and sends nothing.
func (p *PetSync) Save() PetSaveOp {
	cred := p.cred
	pet := p.record
	pets := p.pets

	return func(ctx context.Context) PetSaveResult {
		if !cred.Present() {
			return PetSaveResult{Submitted: pet, Err: service.ErrMissingCredential}
		}
		created, err := pets.CreatePet(ctx, cred, pet)
		return PetSaveResult{Submitted: pet, Created: created, Err: err}
	}
}

// ApplySave reports the outcome and returns the sequence number of the
// notification it showed. On success every field but the owner is cleared;
// on failure the record is left as entered.
func (p *PetSync) ApplySave(res PetSaveResult) uint64 {
	if res.Err != nil {
		if errors.Is(res.Err, service.ErrMissingCredential) {
			p.logger.Warn().Msg("pet submitted without a session")
		} else {
			p.logger.Err(res.Err).Msg("failed to add pet")
		}
		return p.notify(models.NotificationError, PetAddFailedMessage)
	}

	p.record = p.record.ClearInputs()
	return p.notify(models.NotificationSuccess, PetAddedMessage)
}

// Submit saves the current record and applies the outcome.
func (p *PetSync) Submit(ctx context.Context) error {
	res := p.Save()(ctx)
	p.ApplySave(res)
	return res.Err
}
