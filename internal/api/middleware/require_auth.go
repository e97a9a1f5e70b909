package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginPath is where anonymous callers of guarded routes are sent.
const LoginPath = "/login"

// RequireAuth lets only authenticated requests reach next. It must run
// after Session.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c).IsAnonymous() {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}
