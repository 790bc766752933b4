package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuModel_EnterOpensSelectedPage(t *testing.T) {
	tests := []struct {
		name  string
		moves []tea.KeyMsg
		want  tea.Msg
	}{
		{name: "first item", want: NavigateTo{Page: pagePet}},
		{name: "second item", moves: []tea.KeyMsg{keyMsg(tea.KeyDown)}, want: NavigateTo{Page: pageProfile}},
		{name: "vim keys", moves: []tea.KeyMsg{runes("j"), runes("j"), runes("k")}, want: NavigateTo{Page: pageProfile}},
		{name: "quit item", moves: []tea.KeyMsg{keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown)}, want: QuitRequested{}},
		{name: "up at top stays", moves: []tea.KeyMsg{keyMsg(tea.KeyUp)}, want: NavigateTo{Page: pagePet}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel()
			for _, k := range tt.moves {
				send(t, m, k)
			}

			cmd := send(t, m, keyMsg(tea.KeyEnter))
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestMenuModel_QKeyQuits(t *testing.T) {
	m := NewMenuModel()

	cmd := send(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, QuitRequested{}, cmd())
}

func TestMenuModel_ViewMarksSelection(t *testing.T) {
	m := NewMenuModel()
	send(t, m, keyMsg(tea.KeyDown))

	view := m.View()

	assert.Contains(t, view, "> 2")
	assert.Contains(t, view, "Manage profile")
}
