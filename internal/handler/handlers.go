package handler

import (
	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/handler/http"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
