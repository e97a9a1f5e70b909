package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// UserRepository persists accounts. Email is unique; a duplicate insert
// returns domain.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
