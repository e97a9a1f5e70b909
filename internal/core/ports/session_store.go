package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// SessionStore is the server-held session table.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Find returns domain.ErrSessionNotFound for unknown or expired ids.
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
