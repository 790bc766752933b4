package service

import (
	"github.com/MKhiriev/go-pet-portal/internal/adapter"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	PetService     ClientPetService
	ProfileService ClientProfileService
}

func NewClientServices(cookies store.CookieStore, serverAdapter adapter.ServerAdapter, cookieName string, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(cookies, serverAdapter, cookieName, logger),
		PetService:     NewClientPetService(serverAdapter, logger),
		ProfileService: NewClientProfileService(serverAdapter, logger),
	}
}
