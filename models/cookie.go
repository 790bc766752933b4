package models

import "time"

// Cookie is a named value in the client's local cookie jar.
type Cookie struct {
	Name  string
	Value string

	// ExpiresAt is nil for a session cookie that never expires locally.
	ExpiresAt *time.Time

	UpdatedAt time.Time
}

// Expired reports whether the cookie has an expiry at or before now.
func (c Cookie) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}
