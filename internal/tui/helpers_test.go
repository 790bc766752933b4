package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-portal/models"
)

var annCred = models.Credential{Token: "a.b.c", Email: "ann@example.com"}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg to m and returns the command it produced.
func send(t *testing.T, m tea.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

// exec runs cmd and feeds the resulting message back into m.
func exec(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}
