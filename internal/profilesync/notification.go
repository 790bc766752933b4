package profilesync

import (
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pet-portal/models"
)

// AutoHideDuration is how long a notification stays visible unless it is
// dismissed earlier.
const AutoHideDuration = 6 * time.Second

// noticeSeq numbers banners across every sync of the process, so a timer
// left over from a closed page never matches a banner of a new one.
var noticeSeq atomic.Uint64

// Notification is the transient banner shown after a write.
//
// Every Show takes a new sequence number. Expire only clears the banner it
// was scheduled for, so a stale timer never hides a newer notification.
type Notification struct {
	Visible bool
	Message string
	Kind    models.NotificationKind

	seq uint64
}

// Seq returns the sequence number of the last Show.
func (n Notification) Seq() uint64 {
	return n.seq
}

// Show makes a banner visible, replacing any visible one, and returns its
// sequence number.
func (n *Notification) Show(kind models.NotificationKind, message string) uint64 {
	n.seq = noticeSeq.Add(1)
	n.Visible = true
	n.Kind = kind
	n.Message = message
	return n.seq
}

// Dismiss hides the banner immediately. Dismissing a hidden banner is a no-op.
func (n *Notification) Dismiss() {
	n.Visible = false
}

// Expire hides the banner if it is still the one shown with seq and reports
// whether it did.
func (n *Notification) Expire(seq uint64) bool {
	if !n.Visible || n.seq != seq {
		return false
	}
	n.Visible = false
	return true
}

// notifier is the notification state shared by both sync variants.
type notifier struct {
	notice Notification
}

// Notification returns a copy of the current banner state.
func (n *notifier) Notification() Notification {
	return n.notice
}

// Dismiss hides the banner immediately.
func (n *notifier) Dismiss() {
	n.notice.Dismiss()
}

// Expire hides the banner shown with seq, if it is still current.
func (n *notifier) Expire(seq uint64) bool {
	return n.notice.Expire(seq)
}

func (n *notifier) notify(kind models.NotificationKind, message string) uint64 {
	return n.notice.Show(kind, message)
}
