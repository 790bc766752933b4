package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/profilesync"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PetModel is the add-pet page. The form state lives in a
// [profilesync.PetSync] built once the session credential is read.
type PetModel struct {
	ctx     context.Context
	session service.ClientSessionService
	pets    service.ClientPetService
	logger  *logger.Logger

	// mount identifies this visit of the page.
	mount   uint64
	sync    *profilesync.PetSync
	fields  formFields
	pending int
	status  string
}

func NewPetModel(ctx context.Context, session service.ClientSessionService, pets service.ClientPetService, logger *logger.Logger) *PetModel {
	return &PetModel{
		ctx:     ctx,
		session: session,
		pets:    pets,
		logger:  logger,
		mount:   nextMount(),
		fields:  newFormFields(models.PetEditableFields, []string{"Name", "Species", "Breed", "Age", "Notes"}),
	}
}

func (m *PetModel) Init() tea.Cmd {
	return cmdLoadCredential(m.ctx, m.mount, m.session)
}

func (m *PetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialLoadedMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		cred, status := mountCredential(msg, m.logger)
		m.status = status
		m.sync = profilesync.NewPetSync(cred, m.pets, m.logger)
		return m, tea.Batch(m.fields.focusCurrent(), textinput.Blink)

	case petSavedMsg:
		if msg.mount != m.mount || m.sync == nil {
			return m, nil
		}
		m.pending--
		seq := m.sync.ApplySave(msg.res)
		if msg.res.Err == nil {
			m.fill(m.sync.Record())
		}
		return m, expireAfter(m.mount, seq)

	case noticeExpiredMsg:
		if msg.mount == m.mount && m.sync != nil {
			m.sync.Expire(msg.seq)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.fields.update(msg)
}

func (m *PetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sync == nil {
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.dismiss):
		m.sync.Dismiss()
		return m, nil
	case key.Matches(msg, keys.esc):
		if m.sync.Notification().Visible {
			m.sync.Dismiss()
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.tab):
		return m, m.fields.move(1)
	case key.Matches(msg, keys.backtab):
		return m, m.fields.move(-1)
	case key.Matches(msg, keys.submit):
		return m, m.cmdSave()
	case key.Matches(msg, keys.enter) && !m.fields.onArea():
		return m, m.cmdSave()
	}

	cmd := m.fields.update(msg)
	if err := m.sync.SetField(m.fields.current(), m.fields.value()); err != nil {
		m.logger.Debug().Err(err).Str("field", m.fields.current()).Msg("pet field rejected")
	}
	return m, cmd
}

func (m *PetModel) cmdSave() tea.Cmd {
	op := m.sync.Save()
	ctx, mount := m.ctx, m.mount
	m.pending++

	return func() tea.Msg {
		return petSavedMsg{mount: mount, res: op(ctx)}
	}
}

func (m *PetModel) fill(pet models.Pet) {
	m.fields.set(models.PetFieldName, pet.Name)
	m.fields.set(models.PetFieldSpecies, pet.Species)
	m.fields.set(models.PetFieldBreed, pet.Breed)
	m.fields.set(models.PetFieldAge, pet.Age)
	m.fields.set(models.PetFieldNotes, pet.Notes)
}

func (m *PetModel) View() string {
	if m.sync == nil {
		return renderPage("ADD PET", "Reading session...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(renderBanner(m.sync.Notification()))
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(m.fields.view(false))
	b.WriteString(fmt.Sprintf("\nOwner │ %s\n", readOnlyStyle.Render(valueOrNA(m.sync.Record().OwnerEmail))))

	if m.pending > 0 {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}

	return renderPage("ADD PET", b.String(), "tab: next field │ ctrl+s: save │ ctrl+x: close notice │ esc: back")
}
