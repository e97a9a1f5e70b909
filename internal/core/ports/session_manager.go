package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// SessionManager opens, resolves and closes authenticated sessions.
type SessionManager interface {
	// Login opens a session for user and returns the token the client presents.
	Login(ctx context.Context, user *domain.User) (string, error)
	// ResolveIdentity maps a token to its identity. Missing, invalid, expired
	// or revoked tokens resolve to domain.Anonymous.
	ResolveIdentity(ctx context.Context, token string) domain.Identity
	// Logout revokes the session behind token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error
}
