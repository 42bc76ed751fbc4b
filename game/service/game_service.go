package service

import (
	"context"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, puzzleName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Gameplay
	Move(ctx context.Context, sessionID string, direction string) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, directions string) (*BulkMoveResult, error)
	Undo(ctx context.Context, sessionID string) (*MoveResult, error)
	Reset(ctx context.Context, sessionID string) (*MoveResult, error)

	// State
	GetRender(ctx context.Context, sessionID string) (string, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Solver
	Solve(ctx context.Context, sessionID string) (*SolveResult, error)

	// Puzzle catalog
	ListPuzzles(ctx context.Context) ([]*config.PuzzleInfo, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, puzzleName string, initial engine.State, win *engine.WinConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id, puzzleName string, initial engine.State, win *engine.WinConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles puzzle map loading, satisfied by *config.Manager.
type ConfigManager interface {
	LoadPuzzle(name string) (*config.Puzzle, error)
	ListPuzzles() ([]*config.PuzzleInfo, error)
	GetDefault() *config.Puzzle
}
