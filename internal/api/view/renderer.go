// Package view renders the HTML pages of the app with html/template.
// Every page is parsed together with the shared layout at startup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

// Page names accepted by Renderer.Render.
const (
	Index     = "index"
	EntryForm = "entry_form"
	Register  = "register"
	Login     = "login"
	Error     = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// Layout is the data every page shares.
type Layout struct {
	Identity domain.Identity
	CSRF     string
	// Error is shown above the form when set.
	Error string
}

type IndexPage struct {
	Layout
	Entries []*domain.Entry
}

// EntryFormPage serves both the create and the edit form. Values are kept
// as submitted so a rejected form is shown again with the user's input.
type EntryFormPage struct {
	Layout
	Action      string
	Heading     string
	Title       string
	Description string
	Kind        string
	Date        string
}

// DateLabel follows the selected kind.
func (p EntryFormPage) DateLabel() string {
	kind, _ := domain.ParseEntryKind(p.Kind)
	return kind.DateLabel()
}

type RegisterPage struct {
	Layout
	Name       string
	Email      string
	EmailTaken bool
}

type LoginPage struct {
	Layout
	Email string
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Index, EntryForm, Register, Login, Error} {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
