package main

import (
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/handler"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/server"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/internal/store"
	"github.com/MKhiriev/go-pet-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pet-portal-devserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.Auth.TokenIssuer).Msg("received configs")

	storages := store.NewServerStorages(log)
	services := service.NewServices(storages, cfg.Auth, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
