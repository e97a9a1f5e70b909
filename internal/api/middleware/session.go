package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// IdentityKey is the echo context key holding the request's domain.Identity.
const IdentityKey = "identity"

// Session resolves the session cookie into an identity and injects it into
// the context. Requests without a valid session carry domain.Anonymous;
// this middleware never rejects a request. A cookie whose session is
// expired, revoked or forged is expired in the response.
func Session(sessions ports.SessionManager, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := domain.Anonymous
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				identity = sessions.ResolveIdentity(c.Request().Context(), cookie.Value)
				if identity.IsAnonymous() {
					c.SetCookie(&http.Cookie{
						Name:     cookieName,
						Value:    "",
						Path:     "/",
						MaxAge:   -1,
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}
			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity set by Session, or domain.Anonymous.
func IdentityFrom(c echo.Context) domain.Identity {
	identity, ok := c.Get(IdentityKey).(domain.Identity)
	if !ok {
		return domain.Anonymous
	}
	return identity
}
