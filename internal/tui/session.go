package tui

import (
	"context"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noSessionStatus      = "No session: start with -login <email> or -token <jwt>"
	invalidSessionStatus = "Session token is invalid: sign in again"
)

func cmdLoadCredential(ctx context.Context, mount uint64, session service.ClientSessionService) tea.Cmd {
	return func() tea.Msg {
		cred, err := session.Credential(ctx)
		return credentialLoadedMsg{mount: mount, cred: cred, err: err}
	}
}

// mountCredential turns a loaded credential into the one a form is built
// with. A credential that cannot be read counts as no session.
func mountCredential(msg credentialLoadedMsg, log *logger.Logger) (models.Credential, string) {
	if msg.err != nil {
		log.Warn().Err(msg.err).Msg("session credential is unusable")
		return models.Credential{}, invalidSessionStatus
	}
	if !msg.cred.Present() {
		return models.Credential{}, noSessionStatus
	}
	return msg.cred, ""
}
