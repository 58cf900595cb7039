package model

import "time"

// SessionToken is an opaque login session stored in the repository
type SessionToken struct {
	ID        string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry at now.
func (t *SessionToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
