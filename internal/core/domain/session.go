package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Session is the server-held record of a successful authentication.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession opens a session for user that expires after ttl.
func NewSession(user *User, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:        ulid.Make().String(),
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpiredAt reports whether the session is expired at t.
func (s *Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

// Identity returns the principal the session authenticates.
func (s *Session) Identity() Identity {
	return Identity{UserID: s.UserID, Name: s.UserName}
}
