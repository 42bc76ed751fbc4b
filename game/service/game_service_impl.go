package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
	"github.com/kbox/parabox/game/solver"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{sessions: sessions, configs: configs}
}

func (s *gameServiceImpl) resolvePuzzle(puzzleName string) (*config.Puzzle, error) {
	if puzzleName != "" {
		return s.configs.LoadPuzzle(puzzleName)
	}
	if p := s.configs.GetDefault(); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("no puzzle name given and no default puzzle is available")
}

// CreateSession creates a new puzzle session
func (s *gameServiceImpl) CreateSession(ctx context.Context, puzzleName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	puzzle, err := s.resolvePuzzle(puzzleName)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %q: %w", puzzleName, err)
	}

	sess, err := s.sessions.Create("", puzzle.Name, *puzzle.State, puzzle.Win)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, direction string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if direction == "" {
		return nil, fmt.Errorf("direction must not be empty")
	}
	dir, err := engine.ParseDirectionLetter(direction[0])
	if err != nil {
		return nil, fmt.Errorf("invalid direction %q: %w", direction, err)
	}

	result := applyMove(sess, dir)
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}
	return result, nil
}

// applyMove mutates sess.Current in place and reports what happened.
func applyMove(sess *Session, dir engine.Direction) *MoveResult {
	pushed, err := sess.Current.Go(dir)
	if err != nil {
		return &MoveResult{
			Success:   false,
			Direction: string(engine.DirectionLetter(dir)),
			Render:    config.RenderDebug(&sess.Current),
			Message:   err.Error(),
		}
	}

	sess.History = append(sess.History, dir)
	solved := sess.Current.IsSuccessOn(sess.Win)

	events := []GameEvent{{
		Type:      moveEventType(pushed),
		Message:   moveMessage(pushed, dir),
		Timestamp: time.Now(),
	}}
	if solved {
		events = append(events, GameEvent{Type: "win", Message: "Puzzle solved!", Timestamp: time.Now()})
	}

	return &MoveResult{
		Success:   true,
		Pushed:    pushed,
		Direction: string(engine.DirectionLetter(dir)),
		Render:    config.RenderDebug(&sess.Current),
		Solved:    solved,
		Events:    events,
	}
}

func moveEventType(pushed bool) string {
	if pushed {
		return "push"
	}
	return "move"
}

func moveMessage(pushed bool, dir engine.Direction) string {
	if pushed {
		return fmt.Sprintf("pushed %c", engine.DirectionLetter(dir))
	}
	return fmt.Sprintf("stepped %c", engine.DirectionLetter(dir))
}

// BulkMove replays an action string against a session, stopping at the
// first move that errors.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, directions string) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	dirs, err := engine.ParseDirections(directions)
	if err != nil {
		return nil, fmt.Errorf("invalid action string %q: %w", directions, err)
	}

	result := &BulkMoveResult{RequestedMoves: len(dirs), Success: true}
	for _, dir := range dirs {
		move := applyMove(sess, dir)
		if !move.Success {
			result.Success = false
			result.StoppedReason = move.Message
			result.StoppedOnMove = result.MovesExecuted + 1
			break
		}
		result.MovesExecuted++
		result.Events = append(result.Events, move.Events...)
		if move.Solved {
			result.Solved = true
			break
		}
	}
	result.Render = config.RenderDebug(&sess.Current)

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk move: %v\n", sessionID, err)
	}
	return result, nil
}

// Undo reverts the last move by replaying the session's history, minus
// its final entry, from the initial state.
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if len(sess.History) == 0 {
		return nil, errors.New("nothing to undo")
	}

	remaining := sess.History[:len(sess.History)-1]
	cur := sess.Initial.Clone()
	for _, dir := range remaining {
		if _, err := cur.Go(dir); err != nil {
			// The history was only ever built from successful moves, so
			// replaying it can't fail.
			return nil, fmt.Errorf("replaying history during undo: %w", err)
		}
	}
	sess.Current = cur
	sess.History = remaining

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after undo: %v\n", sessionID, err)
	}

	return &MoveResult{
		Success: true,
		Render:  config.RenderDebug(&sess.Current),
		Solved:  sess.Current.IsSuccessOn(sess.Win),
		Events:  []GameEvent{{Type: "undo", Message: "undid last move", Timestamp: time.Now()}},
	}, nil
}

// Reset restores a session to its initial state.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	sess.Current = sess.Initial.Clone()
	sess.History = nil

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return &MoveResult{
		Success: true,
		Render:  config.RenderDebug(&sess.Current),
		Events:  []GameEvent{{Type: "reset", Message: "session reset to initial state", Timestamp: time.Now()}},
	}, nil
}

// GetRender renders the current board state as map-file text, with the
// player's cell marked.
func (s *gameServiceImpl) GetRender(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}
	return config.RenderDebug(&sess.Current), nil
}

// GetMoveHistory returns paginated move history.
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	moves := make([]string, len(sess.History))
	for i, dir := range sess.History {
		moves[i] = string(engine.DirectionLetter(dir))
	}
	total := len(moves)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var page []string
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			page = append(page, moves[i])
		}
	} else if start < total {
		page = moves[start:end]
	}
	if page == nil {
		page = []string{}
	}

	return &HistoryResponse{
		Moves:       page,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// Solve runs the two-phase BFS solver against the session's current
// state and returns the winning action string, if any.
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	s.mu.RLock()
	sess, err := s.sessions.Get(sessionID)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	result, err := solver.Solve(sess.Current, sess.Win, nil)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return &SolveResult{
		Directions: engine.FormatDirections(result.Directions),
		Steps:      len(result.Directions),
		Solved:     result.Solved,
	}, nil
}

// ListPuzzles returns the catalog of available puzzle maps.
func (s *gameServiceImpl) ListPuzzles(ctx context.Context) ([]*config.PuzzleInfo, error) {
	return s.configs.ListPuzzles()
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		PuzzleName:     sess.PuzzleName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Moves:          len(sess.History),
		Solved:         sess.Current.IsSuccessOn(sess.Win),
		Render:         config.RenderDebug(&sess.Current),
	}
}
