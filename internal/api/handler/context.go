package handler

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/adelingruian/MyNotes/internal/api/middleware"
	"github.com/adelingruian/MyNotes/internal/api/view"
	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// ctxIdentity returns the identity resolved by the Session middleware.
// Guarded handlers can rely on it being non-anonymous.
func ctxIdentity(c echo.Context) domain.Identity {
	return middleware.IdentityFrom(c)
}

// ctxLayout builds the shared page data, including the CSRF token the
// forms post back.
func ctxLayout(c echo.Context, errMsg string) view.Layout {
	token, _ := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string)
	return view.Layout{
		Identity: ctxIdentity(c),
		CSRF:     token,
		Error:    errMsg,
	}
}
