package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// EntryInput carries the form values for creating or editing an entry.
type EntryInput struct {
	Title       string
	Description string
	Kind        domain.EntryKind
	Date        domain.Date
}

// EntryService mediates every entry read and write through the caller's
// identity. Callers never reach EntryRepository directly.
type EntryService interface {
	// ListMine returns an empty slice, never an error, for domain.Anonymous.
	ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Entry, error)
	GetMine(ctx context.Context, identity domain.Identity, entryID string) (*domain.Entry, error)
	CreateMine(ctx context.Context, identity domain.Identity, input EntryInput) (*domain.Entry, error)
	EditMine(ctx context.Context, identity domain.Identity, entryID string, input EntryInput) (*domain.Entry, error)
	DeleteMine(ctx context.Context, identity domain.Identity, entryID string) error
}
