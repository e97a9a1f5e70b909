package domain

import "time"

// MaxTitleLength bounds entry titles, in characters.
const MaxTitleLength = 30

// EntryKind distinguishes tasks (due date) from notes (entry date).
// Both kinds share the same store and the same global title namespace.
type EntryKind string

const (
	KindTask EntryKind = "task"
	KindNote EntryKind = "note"
)

// ParseEntryKind maps form input to a kind. Empty input defaults to task.
func ParseEntryKind(s string) (EntryKind, bool) {
	switch EntryKind(s) {
	case "", KindTask:
		return KindTask, true
	case KindNote:
		return KindNote, true
	}
	return "", false
}

// DateLabel is the human label of the kind's date field.
func (k EntryKind) DateLabel() string {
	if k == KindNote {
		return "Entry date"
	}
	return "Due date"
}

// Entry is a record owned by exactly one user. OwnerID never changes
// after creation.
type Entry struct {
	ID          string
	Title       string
	Description string
	Kind        EntryKind
	Date        Date
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the entry belongs to userID.
func (e *Entry) OwnedBy(userID string) bool {
	return userID != "" && e.OwnerID == userID
}

// EntryFields are the mutable attributes of an entry.
type EntryFields struct {
	Title       string
	Description string
	Kind        EntryKind
	Date        Date
}
