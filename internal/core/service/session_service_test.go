package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

var alice = &domain.User{ID: "user-1", Name: "Alice", Email: "a@x.com"}

func newSessionSvc(store *stubSessionStore) *SessionService {
	return NewSessionService(store, "test-secret", time.Hour, discardLogger)
}

func TestSessionService_LoginThenResolve(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)

	token, err := svc.Login(context.Background(), alice)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected one stored session, got %d", len(store.sessions))
	}

	id := svc.ResolveIdentity(context.Background(), token)
	if id.IsAnonymous() || id.UserID != alice.ID || id.Name != "Alice" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestSessionService_ResolveIsSideEffectFree(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)
	token, _ := svc.Login(context.Background(), alice)

	for i := 0; i < 3; i++ {
		if svc.ResolveIdentity(context.Background(), token).IsAnonymous() {
			t.Fatalf("resolve #%d lost the identity", i)
		}
	}
	if len(store.sessions) != 1 {
		t.Fatalf("resolve must not create or delete sessions, have %d", len(store.sessions))
	}
}

func TestSessionService_LogoutRevokes(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)
	token, _ := svc.Login(context.Background(), alice)

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !svc.ResolveIdentity(context.Background(), token).IsAnonymous() {
		t.Fatal("token must resolve to Anonymous after logout")
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second logout must be a no-op, got %v", err)
	}
}

func TestSessionService_ResolveRejectsBadTokens(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)
	good, _ := svc.Login(context.Background(), alice)

	forged, _ := NewSessionService(store, "other-secret", time.Hour, discardLogger).Login(context.Background(), alice)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x", Subject: alice.ID})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"empty":   "",
		"garbage": "not-a-token",
		"forged":  forged,
		"none":    unsigned,
		"trimmed": good[:len(good)-2],
	}
	for name, token := range cases {
		if id := svc.ResolveIdentity(context.Background(), token); !id.IsAnonymous() {
			t.Errorf("%s: expected Anonymous, got %+v", name, id)
		}
	}
}

func TestSessionService_ResolveExpired(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	token, _ := svc.Login(context.Background(), alice)

	svc.now = func() time.Time { return start.Add(2 * time.Hour) }
	if !svc.ResolveIdentity(context.Background(), token).IsAnonymous() {
		t.Fatal("expired session must resolve to Anonymous")
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout of expired token: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatal("logout must delete the session even when the token expired")
	}
}

func TestSessionService_ResolveStoreFailure(t *testing.T) {
	store := newStubSessionStore()
	svc := newSessionSvc(store)
	token, _ := svc.Login(context.Background(), alice)

	store.findErr = errStoreDown
	if !svc.ResolveIdentity(context.Background(), token).IsAnonymous() {
		t.Fatal("store failure must resolve to Anonymous")
	}
}

func TestSessionService_LoginRequiresUser(t *testing.T) {
	svc := newSessionSvc(newStubSessionStore())
	if _, err := svc.Login(context.Background(), &domain.User{}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
