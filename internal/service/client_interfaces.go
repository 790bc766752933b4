package service

import (
	"context"

	"github.com/MKhiriev/go-pet-portal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the session cookie and the identity decoded from
// it.
type ClientSessionService interface {
	// Credential reads the session cookie and decodes its identity claim. A
	// missing cookie yields a zero Credential and no error. A token that
	// cannot be decoded yields ErrInvalidCredential.
	Credential(ctx context.Context) (models.Credential, error)

	// ImportToken decodes token and stores it as the session cookie.
	ImportToken(ctx context.Context, token string) (models.Credential, error)

	// Login requests a token for email from the API and stores it.
	Login(ctx context.Context, email string) (models.Credential, error)

	// Logout removes the session cookie.
	Logout(ctx context.Context) error
}

// ClientPetService submits pets on behalf of the session identity.
type ClientPetService interface {
	// CreatePet submits pet with OwnerEmail taken from cred. It returns
	// ErrMissingCredential without a request when cred is absent.
	CreatePet(ctx context.Context, cred models.Credential, pet models.Pet) (models.Pet, error)
}

// ClientProfileService reads and writes the profile of the session identity.
type ClientProfileService interface {
	// GetProfile fetches the profile of cred's identity.
	GetProfile(ctx context.Context, cred models.Credential) (models.UserProfile, error)

	// UpdateProfile replaces the profile of cred's identity.
	UpdateProfile(ctx context.Context, cred models.Credential, profile models.UserProfile) (models.UserProfile, error)
}
