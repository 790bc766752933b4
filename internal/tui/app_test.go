package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-portal/models"
)

type stubPage struct {
	name  string
	inits int
	msgs  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func newTestRoot(built *int) RootModel {
	pages := map[string]PageFactory{
		pageMenu: func() tea.Model { return NewMenuModel() },
		pagePet: func() tea.Model {
			*built++
			return &stubPage{name: "pet page"}
		},
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
}

func TestRootModel_StartsOnStartPage(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	assert.Equal(t, pageMenu, root.Current())
	assert.Contains(t, root.View(), "Add pet")
	assert.Zero(t, built)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, cmd := root.Update(keyMsg(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(RootModel).quitByUser)
}

func TestRootModel_QuitRequested(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, cmd := root.Update(QuitRequested{})

	require.NotNil(t, cmd)
	assert.True(t, next.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, _ := root.Update(runes("v"))
	root = next.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")
	assert.Contains(t, root.View(), "abc123")

	// keys other than esc and v are swallowed while the window is open
	next, cmd := root.Update(keyMsg(tea.KeyEnter))
	root = next.(RootModel)
	assert.Nil(t, cmd)
	assert.True(t, root.showBuildInfo)

	next, _ = root.Update(keyMsg(tea.KeyEsc))
	root = next.(RootModel)
	assert.False(t, root.showBuildInfo)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, _ := root.Update(NavigateTo{Page: pagePet})
	root = next.(RootModel)

	next, _ = root.Update(runes("v"))
	root = next.(RootModel)

	assert.False(t, root.showBuildInfo)
	page := root.current.(*stubPage)
	require.Len(t, page.msgs, 1)
	assert.Equal(t, runes("v"), page.msgs[0])
}

func TestRootModel_NavigateBuildsFreshPage(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, _ := root.Update(NavigateTo{Page: pagePet})
	root = next.(RootModel)
	first := root.current.(*stubPage)
	assert.Equal(t, pagePet, root.Current())
	assert.Equal(t, 1, first.inits)

	next, _ = root.Update(NavigateTo{Page: pageMenu})
	root = next.(RootModel)
	next, _ = root.Update(NavigateTo{Page: pagePet})
	root = next.(RootModel)

	assert.Equal(t, 2, built)
	assert.NotSame(t, first, root.current)
}

func TestRootModel_NavigateUnknownPageIgnored(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, cmd := root.Update(NavigateTo{Page: "nope"})

	assert.Nil(t, cmd)
	assert.Equal(t, pageMenu, next.(RootModel).Current())
}

func TestRootModel_DelegatesToCurrentPage(t *testing.T) {
	var built int
	root := newTestRoot(&built)

	next, _ := root.Update(NavigateTo{Page: pagePet})
	root = next.(RootModel)
	next, _ = root.Update(noticeExpiredMsg{seq: 3})
	root = next.(RootModel)

	page := root.current.(*stubPage)
	assert.Equal(t, []tea.Msg{noticeExpiredMsg{seq: 3}}, page.msgs)
	assert.Equal(t, "pet page", root.View())
}
