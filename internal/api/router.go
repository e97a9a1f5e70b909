package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/api/handler"
	"github.com/adelingruian/MyNotes/internal/api/middleware"
	"github.com/adelingruian/MyNotes/internal/api/view"
	"github.com/adelingruian/MyNotes/internal/core/ports"
	"github.com/adelingruian/MyNotes/internal/infrastructure/http/handlers"
)

// Dependencies are the services the routes are served by.
type Dependencies struct {
	Credentials ports.CredentialService
	Sessions    ports.SessionManager
	Entries     ports.EntryService
	// Readiness checks run by GET /health/ready, keyed by dependency name.
	Readiness map[string]handlers.Check
}

type Options struct {
	Cookie handler.CookieSettings
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, opts Options, log zerolog.Logger) (*echo.Echo, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "mynotes_http",
		Registerer: opts.Registerer,
		Skipper:    skipProbes,
	}))
	e.Use(middleware.Session(deps.Sessions, opts.Cookie.Name))
	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper:        skipProbes,
		TokenLookup:    "form:csrf_token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   opts.Cookie.Secure,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	authHandler := handler.NewAuthHandler(deps.Credentials, deps.Sessions, opts.Cookie, log)
	entryHandler := handler.NewEntryHandler(deps.Entries)
	requireAuth := middleware.RequireAuth()

	// --- Entries ---
	e.GET("/", entryHandler.Index)
	for _, path := range []string{"/add-entry", "/add-activity"} {
		e.GET(path, entryHandler.NewForm, requireAuth)
		e.POST(path, entryHandler.Create, requireAuth)
	}
	e.GET("/edit/:id", entryHandler.EditForm, requireAuth)
	e.POST("/edit/:id", entryHandler.Update, requireAuth)
	e.GET("/delete/:id", entryHandler.Delete, requireAuth)
	e.GET("/download", entryHandler.Download, requireAuth)

	// --- Auth ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handlers.Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))

	return e, nil
}

func skipProbes(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/health") || path == "/metrics"
}
