package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adelingruian/MyNotes/internal/core/domain"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data, nil); err != nil {
		t.Fatalf("Render %s: %v", name, err)
	}
	return buf.String()
}

func TestRender_IndexListsEntries(t *testing.T) {
	out := render(t, Index, IndexPage{
		Layout: Layout{Identity: domain.Identity{UserID: "u1", Name: "Alice"}},
		Entries: []*domain.Entry{
			{ID: "e1", Title: "T1", Description: "d", Kind: domain.KindTask, Date: domain.NewDate(2024, 3, 5)},
			{ID: "e2", Title: "Diary", Description: "<b>x</b>", Kind: domain.KindNote, Date: domain.NewDate(2025, 1, 1)},
		},
	})

	for _, want := range []string{"Alice", "T1", "Due date: 05/03/2024", "Entry date: 01/01/2025", `href="/edit/e1"`, `href="/delete/e2"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(out, "<b>x</b>") {
		t.Error("description must be escaped")
	}
}

func TestRender_IndexAnonymous(t *testing.T) {
	out := render(t, Index, IndexPage{Layout: Layout{Identity: domain.Anonymous}})

	if !strings.Contains(out, `href="/login"`) || strings.Contains(out, `href="/logout"`) {
		t.Errorf("anonymous navigation expected, got %s", out)
	}
}

func TestRender_EntryFormKeepsInput(t *testing.T) {
	out := render(t, EntryForm, EntryFormPage{
		Layout:      Layout{Identity: domain.Identity{UserID: "u1"}, CSRF: "tok", Error: "an entry with this title already exists"},
		Action:      "/add-entry",
		Heading:     "New entry",
		Title:       "T1",
		Description: "d",
		Kind:        "note",
		Date:        "2025-01-01",
	})

	for _, want := range []string{`value="tok"`, `value="T1"`, ">d</textarea>", `value="2025-01-01"`, "Entry date", "already exists", `<option value="note" selected>`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRender_RegisterEmailTaken(t *testing.T) {
	out := render(t, Register, RegisterPage{Name: "Alice", Email: "a@x.com", EmailTaken: true})

	if !strings.Contains(out, "Email is already registered") || !strings.Contains(out, `value="a@x.com"`) {
		t.Errorf("unexpected register page: %s", out)
	}
}

func TestRender_ErrorPage(t *testing.T) {
	out := render(t, Error, ErrorPage{Status: 404, Message: "entry not found"})

	if !strings.Contains(out, "404") || !strings.Contains(out, "entry not found") {
		t.Errorf("unexpected error page: %s", out)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "missing", nil, nil); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestEntryFormPage_DateLabel(t *testing.T) {
	if got := (EntryFormPage{}).DateLabel(); got != "Due date" {
		t.Errorf("default label: got %q", got)
	}
	if got := (EntryFormPage{Kind: "note"}).DateLabel(); got != "Entry date" {
		t.Errorf("note label: got %q", got)
	}
}
