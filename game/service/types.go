package service

import (
	"time"

	"github.com/kbox/parabox/game/engine"
)

// PuzzleInfo and Puzzle themselves live in game/config; service only
// orchestrates sessions on top of them.

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string    `json:"id"`
	PuzzleName     string    `json:"puzzle_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Moves          int       `json:"moves"`
	Solved         bool      `json:"solved"`
	Render         string    `json:"render"`
}

// MoveResult contains the result of a single move, undo, or reset.
type MoveResult struct {
	Success   bool        `json:"success"`
	Pushed    bool        `json:"pushed,omitempty"`
	Direction string      `json:"direction,omitempty"`
	Render    string      `json:"render"`
	Solved    bool        `json:"solved"`
	Message   string      `json:"message"`
	Events    []GameEvent `json:"events,omitempty"`
}

// BulkMoveResult contains the result of replaying an action string.
type BulkMoveResult struct {
	RequestedMoves int         `json:"requested_moves"`
	MovesExecuted  int         `json:"moves_executed"`
	Success        bool        `json:"success"`
	StoppedReason  string      `json:"stopped_reason,omitempty"`
	StoppedOnMove  int         `json:"stopped_on_move,omitempty"`
	Render         string      `json:"render"`
	Solved         bool        `json:"solved"`
	Events         []GameEvent `json:"events"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "push", "undo", "reset", "win"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []string `json:"moves"`
	TotalMoves  int      `json:"total_moves"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
	TotalPages  int      `json:"total_pages"`
	HasNext     bool     `json:"has_next"`
	HasPrevious bool     `json:"has_previous"`
}

// SolveResult is the outcome of asking the solver to finish a session.
type SolveResult struct {
	Directions string `json:"directions"` // action-string encoded, e.g. "RRUD"
	Steps      int    `json:"steps"`
	Solved     bool   `json:"solved"`
}

// Session represents an active puzzle session. Current is the live,
// mutable state; Initial plus History is the compact form persisted to
// disk and replayed to recompute Current, including on Undo (replaying
// every move but the last).
type Session struct {
	ID             string
	PuzzleName     string
	Initial        engine.State
	Win            *engine.WinConfig
	Current        engine.State
	History        []engine.Direction
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
