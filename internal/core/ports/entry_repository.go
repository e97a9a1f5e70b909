package ports

import (
	"context"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// EntryRepository is a plain store keyed by entry id. It enforces global
// title uniqueness but never checks ownership; that is EntryService's job.
type EntryRepository interface {
	// Create inserts the entry and returns its id, or domain.ErrTitleConflict.
	Create(ctx context.Context, entry *domain.Entry) (string, error)
	// Get returns domain.ErrEntryNotFound when the id is unknown.
	Get(ctx context.Context, id string) (*domain.Entry, error)
	// Update replaces the mutable fields. Returns domain.ErrEntryNotFound or
	// domain.ErrTitleConflict without modifying state.
	Update(ctx context.Context, id string, fields domain.EntryFields) error
	Delete(ctx context.Context, id string) error
	// ListByOwner returns the owner's entries in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Entry, error)
}
