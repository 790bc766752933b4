package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/internal/tui"
)

type App struct {
	cfg      config.ClientApp
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(cfg config.ClientApp, services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("client: session service is nil")
	}
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run applies the session flags and starts the UI. With -logout the session
// is removed and the UI is not started.
func (a *App) Run(ctx context.Context) error {
	session := a.services.SessionService

	if a.cfg.Logout {
		if err := session.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Msg("session removed")
		return nil
	}

	if a.cfg.ImportToken != "" {
		cred, err := session.ImportToken(ctx, a.cfg.ImportToken)
		if err != nil {
			return fmt.Errorf("import token: %w", err)
		}
		a.logger.Info().Str("email", cred.Email).Msg("session token imported")
	}

	if a.cfg.LoginEmail != "" {
		cred, err := session.Login(ctx, a.cfg.LoginEmail)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		a.logger.Info().Str("email", cred.Email).Msg("signed in")
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
