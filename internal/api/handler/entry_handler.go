package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelingruian/MyNotes/internal/api/metrics"
	"github.com/adelingruian/MyNotes/internal/api/view"
	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// EntryHandler serves the entry list and the create, edit and delete
// flows. Every call goes through the caller's identity.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Index handles GET /. Anonymous callers get an empty list.
func (h *EntryHandler) Index(c echo.Context) error {
	entries, err := h.service.ListMine(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, view.Index, view.IndexPage{
		Layout:  ctxLayout(c, ""),
		Entries: entries,
	})
}

// NewForm handles GET /add-entry and its /add-activity alias.
func (h *EntryHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.EntryForm, view.EntryFormPage{
		Layout:  ctxLayout(c, ""),
		Action:  c.Request().URL.Path,
		Heading: "New entry",
		Kind:    string(domain.KindTask),
	})
}

// Create handles POST /add-entry.
func (h *EntryHandler) Create(c echo.Context) error {
	page := view.EntryFormPage{Action: c.Request().URL.Path, Heading: "New entry"}

	input, status, msg := h.readForm(c, &page)
	if msg != "" {
		metrics.EntryOperationsTotal.WithLabelValues("create", "invalid").Inc()
		page.Layout = ctxLayout(c, msg)
		return c.Render(status, view.EntryForm, page)
	}

	_, err := h.service.CreateMine(c.Request().Context(), ctxIdentity(c), input)
	metrics.EntryOperationsTotal.WithLabelValues("create", outcome(err)).Inc()
	if status, msg, ok := formError(err); ok {
		page.Layout = ctxLayout(c, msg)
		return c.Render(status, view.EntryForm, page)
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /edit/:id with the stored values pre-filled.
func (h *EntryHandler) EditForm(c echo.Context) error {
	entry, err := h.service.GetMine(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, view.EntryForm, view.EntryFormPage{
		Layout:      ctxLayout(c, ""),
		Action:      "/edit/" + entry.ID,
		Heading:     "Edit entry",
		Title:       entry.Title,
		Description: entry.Description,
		Kind:        string(entry.Kind),
		Date:        entry.Date.ISO(),
	})
}

// Update handles POST /edit/:id. Only the owner may edit; a missing or
// foreign entry is reported before the form is looked at.
func (h *EntryHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.service.GetMine(c.Request().Context(), ctxIdentity(c), id); err != nil {
		metrics.EntryOperationsTotal.WithLabelValues("edit", outcome(err)).Inc()
		return err
	}
	page := view.EntryFormPage{Action: "/edit/" + id, Heading: "Edit entry"}

	input, status, msg := h.readForm(c, &page)
	if msg != "" {
		metrics.EntryOperationsTotal.WithLabelValues("edit", "invalid").Inc()
		page.Layout = ctxLayout(c, msg)
		return c.Render(status, view.EntryForm, page)
	}

	_, err := h.service.EditMine(c.Request().Context(), ctxIdentity(c), id, input)
	metrics.EntryOperationsTotal.WithLabelValues("edit", outcome(err)).Inc()
	if status, msg, ok := formError(err); ok {
		page.Layout = ctxLayout(c, msg)
		return c.Render(status, view.EntryForm, page)
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Delete handles GET /delete/:id. Only the owner may delete.
func (h *EntryHandler) Delete(c echo.Context) error {
	err := h.service.DeleteMine(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	metrics.EntryOperationsTotal.WithLabelValues("delete", outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// readForm binds and validates the entry form into page and input. A
// non-empty message means the form must be shown again with that status.
func (h *EntryHandler) readForm(c echo.Context, page *view.EntryFormPage) (ports.EntryInput, int, string) {
	var form entryForm
	if err := c.Bind(&form); err != nil {
		return ports.EntryInput{}, http.StatusBadRequest, "invalid form submission"
	}
	page.Title = form.Title
	page.Description = form.Description
	page.Kind = form.Kind
	page.Date = form.Date

	if err := c.Validate(&form); err != nil {
		return ports.EntryInput{}, http.StatusUnprocessableEntity, err.Error()
	}
	date, err := domain.ParseDate(form.Date)
	if err != nil {
		return ports.EntryInput{}, http.StatusUnprocessableEntity, domain.ErrInvalidDate.Error()
	}
	// date inputs only accept YYYY-MM-DD
	page.Date = date.ISO()

	return ports.EntryInput{
		Title:       form.Title,
		Description: form.Description,
		Kind:        domain.EntryKind(form.Kind),
		Date:        date,
	}, 0, ""
}

// formError maps the errors a user can fix by editing the form.
func formError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrTitleConflict):
		return http.StatusConflict, domain.ErrTitleConflict.Error(), true
	case errors.Is(err, domain.ErrInvalidEntry):
		return http.StatusUnprocessableEntity, err.Error(), true
	}
	return 0, "", false
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrTitleConflict):
		return "title_conflict"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrEntryNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidEntry):
		return "invalid"
	default:
		return "error"
	}
}
