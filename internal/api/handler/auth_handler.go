package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/api/metrics"
	"github.com/adelingruian/MyNotes/internal/api/view"
	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	credentials ports.CredentialService
	sessions    ports.SessionManager
	cookie      CookieSettings
	log         zerolog.Logger
}

func NewAuthHandler(credentials ports.CredentialService, sessions ports.SessionManager, cookie CookieSettings, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		sessions:    sessions,
		cookie:      cookie,
		log:         log,
	}
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.Register, view.RegisterPage{Layout: ctxLayout(c, "")})
}

// Register handles POST /register. A new account is logged in right away.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.renderRegister(c, http.StatusBadRequest, form, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid_form").Inc()
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, err.Error())
	}

	user, err := h.credentials.Register(c.Request().Context(), form.Name, form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate_email").Inc()
		page := view.RegisterPage{Layout: ctxLayout(c, ""), Name: form.Name, Email: form.Email, EmailTaken: true}
		return c.Render(http.StatusConflict, view.Register, page)
	case errors.Is(err, domain.ErrIncompleteAccount):
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid_form").Inc()
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, err.Error())
	case err != nil:
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return h.startSession(c, user)
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.Login, view.LoginPage{Layout: ctxLayout(c, "")})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, form, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_form").Inc()
		return h.renderLogin(c, http.StatusUnprocessableEntity, form, err.Error())
	}

	user, err := h.credentials.Verify(c.Request().Context(), form.Email, form.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		return h.renderLogin(c, http.StatusUnauthorized, form, "Invalid email or password.")
	}
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return h.startSession(c, user)
}

// Logout handles GET /logout. The cookie is cleared even when the server
// side session is already gone.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn().Err(err).Msg("logout: failed to revoke session")
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c echo.Context, user *domain.User) error {
	token, err := h.sessions.Login(c.Request().Context(), user)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, form registerForm, msg string) error {
	return c.Render(status, view.Register, view.RegisterPage{
		Layout: ctxLayout(c, msg),
		Name:   form.Name,
		Email:  form.Email,
	})
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, form loginForm, msg string) error {
	return c.Render(status, view.Login, view.LoginPage{
		Layout: ctxLayout(c, msg),
		Email:  form.Email,
	})
}
