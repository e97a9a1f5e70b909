package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// CredentialService registers users and verifies their passwords.
type CredentialService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Verify returns domain.ErrInvalidCredentials both for an unknown email
	// and for a wrong password.
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}
