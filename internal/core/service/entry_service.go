package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// EntryService scopes every entry operation to the caller's identity.
type EntryService struct {
	repo ports.EntryRepository
	log  zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, log zerolog.Logger) *EntryService {
	return &EntryService{repo: repo, log: log}
}

// ListMine returns the caller's entries. Anonymous callers get an empty
// slice and no error.
func (s *EntryService) ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Entry, error) {
	if identity.IsAnonymous() {
		return []*domain.Entry{}, nil
	}
	entries, err := s.repo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

// GetMine loads an entry the caller owns.
func (s *EntryService) GetMine(ctx context.Context, identity domain.Identity, entryID string) (*domain.Entry, error) {
	if identity.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	entry, err := s.repo.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.OwnedBy(identity.UserID) {
		s.log.Warn().
			Str("user_id", identity.UserID).
			Str("entry_id", entryID).
			Msg("access to foreign entry denied")
		return nil, domain.ErrForbidden
	}
	return entry, nil
}

func (s *EntryService) CreateMine(ctx context.Context, identity domain.Identity, input ports.EntryInput) (*domain.Entry, error) {
	if identity.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	fields, err := normalize(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		Title:       fields.Title,
		Description: fields.Description,
		Kind:        fields.Kind,
		Date:        fields.Date,
		OwnerID:     identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	s.log.Info().Str("user_id", identity.UserID).Str("entry_id", id).Str("kind", string(entry.Kind)).Msg("entry created")
	return entry, nil
}

func (s *EntryService) EditMine(ctx context.Context, identity domain.Identity, entryID string, input ports.EntryInput) (*domain.Entry, error) {
	entry, err := s.GetMine(ctx, identity, entryID)
	if err != nil {
		return nil, err
	}
	fields, err := normalize(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entryID, fields); err != nil {
		return nil, err
	}

	entry.Title = fields.Title
	entry.Description = fields.Description
	entry.Kind = fields.Kind
	entry.Date = fields.Date
	entry.UpdatedAt = time.Now().UTC()

	s.log.Info().Str("user_id", identity.UserID).Str("entry_id", entryID).Msg("entry updated")
	return entry, nil
}

func (s *EntryService) DeleteMine(ctx context.Context, identity domain.Identity, entryID string) error {
	if _, err := s.GetMine(ctx, identity, entryID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entryID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", identity.UserID).Str("entry_id", entryID).Msg("entry deleted")
	return nil
}

// normalize trims input and rejects values the form layer should already
// have caught.
func normalize(in ports.EntryInput) (domain.EntryFields, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	switch {
	case title == "":
		return domain.EntryFields{}, fmt.Errorf("%w: title is required", domain.ErrInvalidEntry)
	case utf8.RuneCountInString(title) > domain.MaxTitleLength:
		return domain.EntryFields{}, fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidEntry, domain.MaxTitleLength)
	case description == "":
		return domain.EntryFields{}, fmt.Errorf("%w: description is required", domain.ErrInvalidEntry)
	case in.Date.IsZero():
		return domain.EntryFields{}, fmt.Errorf("%w: date is required", domain.ErrInvalidEntry)
	}

	kind, ok := domain.ParseEntryKind(string(in.Kind))
	if !ok {
		return domain.EntryFields{}, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidEntry, in.Kind)
	}

	return domain.EntryFields{
		Title:       title,
		Description: description,
		Kind:        kind,
		Date:        in.Date,
	}, nil
}
