package tui

import (
	"time"

	"github.com/MKhiriev/go-pet-portal/internal/profilesync"
	"github.com/MKhiriev/go-pet-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// expireAfter schedules the auto-hide of the banner shown with seq on the
// page mounted as mount.
func expireAfter(mount, seq uint64) tea.Cmd {
	return tea.Tick(profilesync.AutoHideDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{mount: mount, seq: seq}
	})
}

func renderBanner(n profilesync.Notification) string {
	if !n.Visible {
		return ""
	}

	style := bannerSuccessStyle
	if n.Kind == models.NotificationError {
		style = bannerErrorStyle
	}
	return style.Render(n.Message+"  ✕") + "\n\n"
}
