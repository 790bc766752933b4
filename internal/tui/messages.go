package tui

import (
	"sync/atomic"

	"github.com/MKhiriev/go-pet-portal/internal/profilesync"
	"github.com/MKhiriev/go-pet-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the router to open Page. Payload, when set, is delivered
// to the new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// QuitRequested asks the router to end the program as if the user pressed
// ctrl+c.
type QuitRequested struct{}

// mountSeq numbers page visits. Every result and timer message carries the
// mount of the page that started it, and pages drop messages from other
// mounts.
var mountSeq atomic.Uint64

func nextMount() uint64 {
	return mountSeq.Add(1)
}

type credentialLoadedMsg struct {
	mount uint64
	cred  models.Credential
	err   error
}

type petSavedMsg struct {
	mount uint64
	res   profilesync.PetSaveResult
}

type profileFetchedMsg struct {
	mount uint64
	res   profilesync.ProfileFetchResult
}

type profileSavedMsg struct {
	mount uint64
	res   profilesync.ProfileSaveResult
}

// noticeExpiredMsg is delivered by the auto-hide timer of the banner shown
// with seq.
type noticeExpiredMsg struct {
	mount uint64
	seq   uint64
}

type copiedMsg struct {
	mount uint64
	err   error
}
