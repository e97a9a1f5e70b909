package domain

import "errors"

// Credential errors.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncompleteAccount  = errors.New("name, email and password are required")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrSessionNotFound = errors.New("session not found")
)

// Entry errors.
var (
	ErrTitleConflict = errors.New("an entry with this title already exists")
	ErrEntryNotFound = errors.New("entry not found")
	ErrForbidden     = errors.New("access forbidden")
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrInvalidDate   = errors.New("date must be DD/MM/YYYY")
)
