package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adelingruian/MyNotes/internal/api/middleware"
	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

type stubCredentials struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	verifyFn   func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubCredentials) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubCredentials) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	return s.verifyFn(ctx, email, password)
}

type stubSessions struct {
	loginFn   func(ctx context.Context, user *domain.User) (string, error)
	loggedOut []string
}

func (s *stubSessions) Login(ctx context.Context, user *domain.User) (string, error) {
	return s.loginFn(ctx, user)
}

func (s *stubSessions) ResolveIdentity(context.Context, string) domain.Identity {
	return domain.Anonymous
}

func (s *stubSessions) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubEntries struct {
	listFn   func(ctx context.Context, identity domain.Identity) ([]*domain.Entry, error)
	getFn    func(ctx context.Context, identity domain.Identity, id string) (*domain.Entry, error)
	createFn func(ctx context.Context, identity domain.Identity, input ports.EntryInput) (*domain.Entry, error)
	editFn   func(ctx context.Context, identity domain.Identity, id string, input ports.EntryInput) (*domain.Entry, error)
	deleteFn func(ctx context.Context, identity domain.Identity, id string) error
}

func (s *stubEntries) ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Entry, error) {
	return s.listFn(ctx, identity)
}

func (s *stubEntries) GetMine(ctx context.Context, identity domain.Identity, id string) (*domain.Entry, error) {
	return s.getFn(ctx, identity, id)
}

func (s *stubEntries) CreateMine(ctx context.Context, identity domain.Identity, input ports.EntryInput) (*domain.Entry, error) {
	return s.createFn(ctx, identity, input)
}

func (s *stubEntries) EditMine(ctx context.Context, identity domain.Identity, id string, input ports.EntryInput) (*domain.Entry, error) {
	return s.editFn(ctx, identity, id, input)
}

func (s *stubEntries) DeleteMine(ctx context.Context, identity domain.Identity, id string) error {
	return s.deleteFn(ctx, identity, id)
}

// recordingRenderer keeps the last page rendered.
type recordingRenderer struct {
	name string
	data any
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

var alice = domain.Identity{UserID: "u1", Name: "Alice"}

func newEcho() (*echo.Echo, *recordingRenderer) {
	e := echo.New()
	r := &recordingRenderer{}
	e.Renderer = r
	e.Validator = NewValidator()
	return e, r
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func withIdentity(c echo.Context, identity domain.Identity) echo.Context {
	c.Set(middleware.IdentityKey, identity)
	return c
}

func withID(c echo.Context, path, id string) echo.Context {
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}
