package service

import (
	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/store"
	"github.com/MKhiriev/go-pet-portal/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PetService     PetService
	AppInfoService AppInfoService
}

func NewServices(storages *store.ServerStorages, cfg config.ServerAuth, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg, logger),
		UserService:    NewUserService(storages.Users, logger),
		PetService:     NewPetService(storages.Pets, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
