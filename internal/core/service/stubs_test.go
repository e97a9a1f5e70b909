package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	findErr error
	creates int
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	r.creates++
	clone := *user
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ---------------------------------------------------------------------------
// In-memory entry repository. Mirrors the unique title index of the Mongo
// store.
// ---------------------------------------------------------------------------

type stubEntryRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Entry
	nextID  int
	listErr error
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{byID: make(map[string]*domain.Entry)}
}

func (r *stubEntryRepo) titleTaken(title, exceptID string) bool {
	for id, e := range r.byID {
		if e.Title == title && id != exceptID {
			return true
		}
	}
	return false
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.Entry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.titleTaken(e.Title, "") {
		return "", domain.ErrTitleConflict
	}
	r.nextID++
	id := "entry-" + strconv.Itoa(r.nextID)
	clone := *e
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubEntryRepo) Get(_ context.Context, id string) (*domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Update(_ context.Context, id string, f domain.EntryFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return domain.ErrEntryNotFound
	}
	if r.titleTaken(f.Title, id) {
		return domain.ErrTitleConflict
	}
	e.Title, e.Description, e.Kind, e.Date = f.Title, f.Description, f.Kind, f.Date
	return nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubEntryRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Entry
	for _, e := range r.byID {
		if e.OwnerID == ownerID {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	findErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.ID] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

var errStoreDown = errors.New("store unavailable")
