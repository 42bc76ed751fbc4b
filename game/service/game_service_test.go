package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
	"github.com/kbox/parabox/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{sessions: make(map[string]*service.Session)}
}

func (m *MockSessionManager) Create(id, puzzleName string, initial engine.State, win *engine.WinConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	sess := &service.Session{
		ID:             id,
		PuzzleName:     puzzleName,
		Initial:        initial,
		Win:            win,
		Current:        initial.Clone(),
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
	m.sessions[id] = sess
	return sess, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	sess, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

func (m *MockSessionManager) GetOrCreate(id, puzzleName string, initial engine.State, win *engine.WinConfig) (*service.Session, error) {
	if sess, exists := m.sessions[id]; exists {
		return sess, nil
	}
	return m.Create(id, puzzleName, initial, win)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		result = append(result, sess)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if sess, exists := m.sessions[id]; exists {
		sess.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	puzzles map[string]*config.Puzzle
}

// buildTestPuzzle makes a single-row, four-column board "p.b." with a
// player target on the box's initial position and a box target one
// past that: pushing Right twice (a plain step, then a push) wins.
func buildTestPuzzle() *config.Puzzle {
	b := engine.NewBoard(1, 4)
	b.SetCellAt(engine.Vec2{Row: 0, Col: 0}, engine.Cell{Kind: engine.CellBox}) // player
	b.SetCellAt(engine.Vec2{Row: 0, Col: 1}, engine.Cell{Kind: engine.CellEmpty})
	b.SetCellAt(engine.Vec2{Row: 0, Col: 2}, engine.Cell{Kind: engine.CellBox})
	b.SetCellAt(engine.Vec2{Row: 0, Col: 3}, engine.Cell{Kind: engine.CellEmpty})

	state := &engine.State{
		Player: engine.GlobalPos{Board: 0, Pos: engine.Vec2{Row: 0, Col: 0}},
		Boards: []engine.Board{b},
	}
	win := &engine.WinConfig{
		PlayerTarget: engine.GlobalPos{Board: 0, Pos: engine.Vec2{Row: 0, Col: 2}},
		BoxTargets:   []engine.GlobalPos{{Board: 0, Pos: engine.Vec2{Row: 0, Col: 3}}},
	}
	return &config.Puzzle{Name: "test", State: state, Win: win}
}

func NewMockConfigManager() *MockConfigManager {
	p := buildTestPuzzle()
	return &MockConfigManager{
		puzzles: map[string]*config.Puzzle{"test": p, "default": p},
	}
}

func (m *MockConfigManager) LoadPuzzle(name string) (*config.Puzzle, error) {
	p, exists := m.puzzles[name]
	if !exists {
		return nil, errors.New("puzzle not found")
	}
	return p, nil
}

func (m *MockConfigManager) ListPuzzles() ([]*config.PuzzleInfo, error) {
	result := make([]*config.PuzzleInfo, 0, len(m.puzzles))
	for name, p := range m.puzzles {
		result = append(result, &config.PuzzleInfo{Filename: name + ".box", Name: p.Name, Boards: len(p.State.Boards)})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *config.Puzzle {
	return m.puzzles["default"]
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	tests := []struct {
		name       string
		puzzleName string
		wantErr    bool
	}{
		{name: "create with default puzzle", puzzleName: "", wantErr: false},
		{name: "create with specific puzzle", puzzleName: "test", wantErr: false},
		{name: "create with invalid puzzle", puzzleName: "nonexistent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.CreateSession(ctx, tt.puzzleName)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && sess == nil {
				t.Error("CreateSession() returned nil session")
			}
		})
	}
}

func TestGameService_Move(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sess, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Board is "p.b.": pushing right shifts the player onto the empty
	// cell, no box movement yet.
	res, err := svc.Move(ctx, sess.ID, "R")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !res.Success || res.Pushed {
		t.Errorf("Move() = %+v, want a successful plain step", res)
	}

	// A second right push shoves the box onto the box target and wins.
	res2, err := svc.Move(ctx, sess.ID, "R")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !res2.Success || !res2.Pushed {
		t.Errorf("Move() = %+v, want a successful push", res2)
	}

	if _, err := svc.Move(ctx, "nonexistent", "R"); err == nil {
		t.Error("expected an error for a nonexistent session")
	}

	if _, err := svc.Move(ctx, sess.ID, "X"); err == nil {
		t.Error("expected an error for an invalid direction letter")
	}
}

func TestGameService_BulkMove(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sess, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	result, err := svc.BulkMove(ctx, sess.ID, "RR")
	if err != nil {
		t.Fatalf("BulkMove: %v", err)
	}
	if !result.Success || !result.Solved {
		t.Errorf("BulkMove() = %+v, want a solved puzzle", result)
	}
	if result.MovesExecuted != 2 {
		t.Errorf("MovesExecuted = %d, want 2", result.MovesExecuted)
	}

	if _, err := svc.BulkMove(ctx, "nonexistent", "R"); err == nil {
		t.Error("expected an error for a nonexistent session")
	}
}

func TestGameService_UndoAndReset(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sess, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if _, err := svc.Move(ctx, sess.ID, "R"); err != nil {
		t.Fatalf("Move: %v", err)
	}

	undone, err := svc.Undo(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !undone.Success {
		t.Errorf("Undo() = %+v, want success", undone)
	}

	info, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if info.Moves != 0 {
		t.Errorf("Moves after undo = %d, want 0", info.Moves)
	}

	if _, err := svc.Undo(ctx, sess.ID); err == nil {
		t.Error("expected an error undoing with empty history")
	}

	if _, err := svc.Move(ctx, sess.ID, "R"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	reset, err := svc.Reset(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !reset.Success {
		t.Errorf("Reset() = %+v, want success", reset)
	}
	info2, _ := svc.GetSession(ctx, sess.ID)
	if info2.Moves != 0 {
		t.Errorf("Moves after reset = %d, want 0", info2.Moves)
	}
}

func TestGameService_GetMoveHistory(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sess, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := svc.BulkMove(ctx, sess.ID, "RR"); err != nil {
		t.Fatalf("BulkMove: %v", err)
	}

	tests := []struct {
		name      string
		sessionID string
		opts      service.HistoryOptions
		wantErr   bool
	}{
		{name: "default options", sessionID: sess.ID, opts: service.HistoryOptions{}, wantErr: false},
		{name: "with pagination", sessionID: sess.ID, opts: service.HistoryOptions{Page: 1, Limit: 1, Order: "asc"}, wantErr: false},
		{name: "descending order", sessionID: sess.ID, opts: service.HistoryOptions{Page: 1, Limit: 10, Order: "desc"}, wantErr: false},
		{name: "invalid session", sessionID: "nonexistent", opts: service.HistoryOptions{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GetMoveHistory(ctx, tt.sessionID, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetMoveHistory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && result.Moves == nil {
				t.Error("GetMoveHistory() returned nil moves slice")
			}
		})
	}
}

func TestGameService_ListSessions(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "test"); err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(list) != 3 {
		t.Errorf("ListSessions() returned %d sessions, want 3", len(list))
	}
}

func TestGameService_Solve(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sess, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	result, err := svc.Solve(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Solved || result.Directions == "" {
		t.Errorf("Solve() = %+v, want a solved result with a non-empty action string", result)
	}
}
