package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/profilesync"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ProfileModel is the manage-profile page. Fields are read-only until edit
// mode is switched on with ctrl+e.
type ProfileModel struct {
	ctx      context.Context
	session  service.ClientSessionService
	profiles service.ClientProfileService
	logger   *logger.Logger

	// mount identifies this visit of the page.
	mount   uint64
	sync    *profilesync.ProfileSync
	fields  formFields
	loading bool
	pending int
	status  string
}

func NewProfileModel(ctx context.Context, session service.ClientSessionService, profiles service.ClientProfileService, logger *logger.Logger) *ProfileModel {
	return &ProfileModel{
		ctx:      ctx,
		session:  session,
		profiles: profiles,
		logger:   logger,
		mount:    nextMount(),
		fields:   newFormFields(models.ProfileEditableFields, []string{"First name", "Last name", "Phone", "Address"}),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return cmdLoadCredential(m.ctx, m.mount, m.session)
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialLoadedMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		cred, status := mountCredential(msg, m.logger)
		m.status = status
		m.sync = profilesync.NewProfileSync(cred, m.profiles, m.logger)
		return m, m.cmdFetch()

	case profileFetchedMsg:
		if msg.mount != m.mount || m.sync == nil {
			return m, nil
		}
		m.loading = false
		m.sync.ApplyFetch(msg.res)
		if msg.res.Err == nil {
			m.fill(m.sync.Record())
		}
		return m, nil

	case profileSavedMsg:
		if msg.mount != m.mount || m.sync == nil {
			return m, nil
		}
		m.pending--
		seq := m.sync.ApplySave(msg.res)
		if msg.res.Err == nil {
			m.fill(m.sync.Record())
			m.fields.blurAll()
		}
		return m, expireAfter(m.mount, seq)

	case noticeExpiredMsg:
		if msg.mount == m.mount && m.sync != nil {
			m.sync.Expire(msg.seq)
		}
		return m, nil

	case copiedMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to copy email")
			m.status = "Copy failed: " + humanizeError(msg.err)
		} else {
			m.status = "Email copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.sync != nil && m.sync.Editing() {
		return m, m.fields.update(msg)
	}
	return m, nil
}

func (m *ProfileModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
	case key.Matches(msg, keys.edit):
		if m.sync.ToggleEdit() {
			return m, m.fields.focusCurrent()
		}
		m.fields.blurAll()
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyEmail()
	case key.Matches(msg, keys.tab):
		return m, m.focus(1)
	case key.Matches(msg, keys.backtab):
		return m, m.focus(-1)
	case key.Matches(msg, keys.submit):
		return m, m.cmdSave()
	case key.Matches(msg, keys.enter) && !m.fields.onArea():
		return m, m.cmdSave()
	}

	if !m.sync.Editing() {
		return m, nil
	}

	cmd := m.fields.update(msg)
	if err := m.sync.SetField(m.fields.current(), m.fields.value()); err != nil {
		m.logger.Debug().Err(err).Str("field", m.fields.current()).Msg("profile field rejected")
	}
	return m, cmd
}

func (m *ProfileModel) focus(delta int) tea.Cmd {
	cmd := m.fields.move(delta)
	if !m.sync.Editing() {
		m.fields.blurAll()
		return nil
	}
	return cmd
}

func (m *ProfileModel) cmdFetch() tea.Cmd {
	op := m.sync.Fetch()
	if op == nil {
		return nil
	}

	ctx, mount := m.ctx, m.mount
	m.loading = true
	return func() tea.Msg {
		return profileFetchedMsg{mount: mount, res: op(ctx)}
	}
}

func (m *ProfileModel) cmdSave() tea.Cmd {
	op, err := m.sync.Save()
	if err != nil {
		if errors.Is(err, profilesync.ErrNotEditing) {
			m.status = "Press ctrl+e to edit the profile first"
		}
		return nil
	}

	ctx, mount := m.ctx, m.mount
	m.pending++
	m.status = ""
	return func() tea.Msg {
		return profileSavedMsg{mount: mount, res: op(ctx)}
	}
}

func (m *ProfileModel) cmdCopyEmail() tea.Cmd {
	email := m.sync.Credential().Email
	if email == "" {
		m.status = noSessionStatus
		return nil
	}

	mount := m.mount
	return func() tea.Msg {
		return copiedMsg{mount: mount, err: writeClipboard(email)}
	}
}

func (m *ProfileModel) fill(profile models.UserProfile) {
	m.fields.set(models.ProfileFieldFirstName, profile.FirstName)
	m.fields.set(models.ProfileFieldLastName, profile.LastName)
	m.fields.set(models.ProfileFieldPhoneNumber, profile.PhoneNumber)
	m.fields.set(models.ProfileFieldAddress, profile.Address)
}

func (m *ProfileModel) View() string {
	if m.sync == nil {
		return renderPage("MANAGE PROFILE", "Reading session...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(renderBanner(m.sync.Notification()))
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString("Loading profile...\n\n")
	}

	b.WriteString(fmt.Sprintf("Email │ %s\n\n", readOnlyStyle.Render(valueOrNA(m.sync.Credential().Email))))
	b.WriteString(m.fields.view(!m.sync.Editing()))

	hotKeys := "ctrl+e: edit │ ctrl+y: copy email │ ctrl+x: close notice │ esc: back"
	if m.sync.Editing() {
		if m.pending > 0 {
			b.WriteString("\n[Saving...]")
		} else {
			b.WriteString("\n[Save]")
		}
		hotKeys = "tab: next field │ ctrl+s: save │ ctrl+e: stop editing │ ctrl+y: copy email │ esc: back"
	}

	return renderPage("MANAGE PROFILE", b.String(), hotKeys)
}
