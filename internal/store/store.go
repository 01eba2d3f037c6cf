// Package store persists calculator session snapshots between runs.
package store

import "time"

// Session is the persisted state of one calculator session. Mode holds the
// display mode name ("EDITING", "SHOWING_RESULT", "SHOWING_ERROR").
type Session struct {
	Buffer     string
	Mode       string
	ResultText string
	UpdatedAt  time.Time
}

// Store is the interface for session persistence.
type Store interface {
	// Get retrieves a session by name. Returns nil if not found.
	Get(name string) (*Session, error)
	// Put stores a session by name, overwriting if it exists.
	Put(name string, s *Session) error
	// Delete removes a session by name.
	Delete(name string) error
	// Close releases resources.
	Close() error
}
