package service

import (
	"context"

	"github.com/MKhiriev/go-pet-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies dev server session tokens.
type AuthService interface {
	// Login seeds an account for email when none exists and returns a signed
	// token whose subject is email.
	Login(ctx context.Context, email string) (models.Token, error)
	// ParseToken verifies tokenString and returns the parsed token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and writes dev server accounts.
type UserService interface {
	GetUser(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, email string, profile models.UserProfile) (models.User, error)
}

// PetService stores pets created through the dev server.
type PetService interface {
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
