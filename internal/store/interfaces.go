package store

import (
	"context"

	"github.com/MKhiriev/go-pet-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CookieStore is the client-side cookie jar. It holds the session token the
// client reads its identity from.
type CookieStore interface {
	// Get returns the named cookie or ErrCookieNotFound when it is missing or
	// expired.
	Get(ctx context.Context, name string) (models.Cookie, error)
	// Set inserts the cookie or replaces the value stored under its name.
	Set(ctx context.Context, cookie models.Cookie) error
	// Delete removes the named cookie. Deleting a missing cookie is not an
	// error.
	Delete(ctx context.Context, name string) error
}

// UserRepository stores dev server accounts keyed by email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// PetRepository stores pets created through the dev server.
type PetRepository interface {
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error)
}
