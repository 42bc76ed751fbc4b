package session

import (
	"time"

	"github.com/kbox/parabox/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for a persisted session. It
// stores the puzzle name and the move history rather than a full board
// snapshot: Load reloads the puzzle's initial state from the config
// manager and replays History against it to recover Current.
type PersistedSessionData struct {
	ID             string    `json:"id"`
	PuzzleName     string    `json:"puzzle_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	History        string    `json:"history"` // action-string encoded, e.g. "RRUD"
}
