package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	pageMenu    = "menu"
	pagePet     = "pet"
	pageProfile = "profile"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Pages returns the page factories of the portal. Form pages are built anew
// on every visit so each one starts from the current session.
func (t *TUI) Pages(ctx context.Context) map[string]PageFactory {
	return map[string]PageFactory{
		pageMenu: func() tea.Model { return NewMenuModel() },
		pagePet: func() tea.Model {
			return NewPetModel(ctx, t.services.SessionService, t.services.PetService, t.logger)
		},
		pageProfile: func() tea.Model {
			return NewProfileModel(ctx, t.services.SessionService, t.services.ProfileService, t.logger)
		},
	}
}

// Run starts the program on the menu page and blocks until it exits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.Pages(ctx), pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
