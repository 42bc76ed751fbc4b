package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/service"
	"github.com/kbox/parabox/transport/websocket"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	CreateSessionFunc  func(ctx context.Context, puzzleName string) (*service.SessionInfo, error)
	GetSessionFunc     func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc   func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc  func(ctx context.Context, sessionID string) error
	MoveFunc           func(ctx context.Context, sessionID, direction string) (*service.MoveResult, error)
	BulkMoveFunc       func(ctx context.Context, sessionID, directions string) (*service.BulkMoveResult, error)
	UndoFunc           func(ctx context.Context, sessionID string) (*service.MoveResult, error)
	ResetFunc          func(ctx context.Context, sessionID string) (*service.MoveResult, error)
	GetRenderFunc      func(ctx context.Context, sessionID string) (string, error)
	GetMoveHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)
	SolveFunc          func(ctx context.Context, sessionID string) (*service.SolveResult, error)
	ListPuzzlesFunc    func(ctx context.Context) ([]*config.PuzzleInfo, error)
}

func (m *MockGameService) CreateSession(ctx context.Context, puzzleName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, puzzleName)
	}
	return &service.SessionInfo{ID: "test-session", PuzzleName: puzzleName, CreatedAt: time.Now()}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{ID: sessionID, PuzzleName: "corridor", CreatedAt: time.Now()}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) Move(ctx context.Context, sessionID, direction string) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, direction)
	}
	return &service.MoveResult{Success: true, Direction: direction, Render: "p.b."}, nil
}

func (m *MockGameService) BulkMove(ctx context.Context, sessionID, directions string) (*service.BulkMoveResult, error) {
	if m.BulkMoveFunc != nil {
		return m.BulkMoveFunc(ctx, sessionID, directions)
	}
	return &service.BulkMoveResult{Success: true, RequestedMoves: len(directions), MovesExecuted: len(directions), Render: "p.b."}, nil
}

func (m *MockGameService) Undo(ctx context.Context, sessionID string) (*service.MoveResult, error) {
	if m.UndoFunc != nil {
		return m.UndoFunc(ctx, sessionID)
	}
	return &service.MoveResult{Success: true, Render: "p.b."}, nil
}

func (m *MockGameService) Reset(ctx context.Context, sessionID string) (*service.MoveResult, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return &service.MoveResult{Success: true, Render: "p.b."}, nil
}

func (m *MockGameService) GetRender(ctx context.Context, sessionID string) (string, error) {
	if m.GetRenderFunc != nil {
		return m.GetRenderFunc(ctx, sessionID)
	}
	return "p.b.", nil
}

func (m *MockGameService) GetMoveHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMoveHistoryFunc != nil {
		return m.GetMoveHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{Moves: []string{}, TotalMoves: 0, Page: 1, PageSize: opts.Limit}, nil
}

func (m *MockGameService) Solve(ctx context.Context, sessionID string) (*service.SolveResult, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, sessionID)
	}
	return &service.SolveResult{Directions: "RR", Steps: 2, Solved: true}, nil
}

func (m *MockGameService) ListPuzzles(ctx context.Context) ([]*config.PuzzleInfo, error) {
	if m.ListPuzzlesFunc != nil {
		return m.ListPuzzlesFunc(ctx)
	}
	return []*config.PuzzleInfo{{Filename: "corridor.box", Name: "corridor", Boards: 1}}, nil
}

var _ service.GameService = (*MockGameService)(nil)

func newTestServer(mock *MockGameService) *Server {
	return NewServer(mock, websocket.NewHub())
}

func doRequest(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateSession(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions", map[string]string{"puzzle_name": "corridor"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var sess service.SessionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if sess.PuzzleName != "corridor" {
		t.Errorf("expected puzzle name 'corridor', got %q", sess.PuzzleName)
	}
}

func TestHandleCreateSessionError(t *testing.T) {
	mock := &MockGameService{
		CreateSessionFunc: func(ctx context.Context, puzzleName string) (*service.SessionInfo, error) {
			return nil, context.DeadlineExceeded
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions", map[string]string{"puzzle_name": "corridor"})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestHandleGetSession(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions/abcd", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var sess service.SessionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if sess.ID != "abcd" {
		t.Errorf("expected session ID 'abcd', got %q", sess.ID)
	}
}

func TestHandleGetSessionNotFound(t *testing.T) {
	mock := &MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, errors.New("session not found")
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDeleteSession(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodDelete, "/api/sessions/abcd", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleListSessions(t *testing.T) {
	now := time.Now()
	mock := &MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "a", CreatedAt: now.Add(-2 * time.Hour), LastAccessedAt: now.Add(-2 * time.Hour)},
				{ID: "b", CreatedAt: now.Add(-1 * time.Hour), LastAccessedAt: now},
			}, nil
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions?order=asc&sort=created", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Sessions) != 2 || resp.Sessions[0].ID != "a" {
		t.Errorf("expected sessions sorted ascending by created time, got %+v", resp.Sessions)
	}
}

func TestHandleGetRender(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions/abcd/render", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp["render"] == "" {
		t.Error("expected non-empty render")
	}
}

func TestHandleMove(t *testing.T) {
	mock := &MockGameService{
		MoveFunc: func(ctx context.Context, sessionID, direction string) (*service.MoveResult, error) {
			if direction != "R" {
				t.Errorf("expected direction 'R', got %q", direction)
			}
			return &service.MoveResult{Success: true, Direction: direction, Pushed: true, Solved: true, Render: "p=b"}, nil
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/move", map[string]string{"direction": "R"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result service.MoveResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !result.Solved {
		t.Error("expected solved result")
	}
}

func TestHandleMoveInvalidBody(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/abcd/move", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleBulkMove(t *testing.T) {
	mock := &MockGameService{
		BulkMoveFunc: func(ctx context.Context, sessionID, directions string) (*service.BulkMoveResult, error) {
			if directions != "RR" {
				t.Errorf("expected directions 'RR', got %q", directions)
			}
			return &service.BulkMoveResult{Success: true, RequestedMoves: 2, MovesExecuted: 2, Solved: true, Render: "p=b"}, nil
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/bulk-move", map[string]string{"directions": "RR"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result service.BulkMoveResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.MovesExecuted != 2 {
		t.Errorf("expected 2 moves executed, got %d", result.MovesExecuted)
	}
}

func TestHandleUndo(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/undo", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleUndoError(t *testing.T) {
	mock := &MockGameService{
		UndoFunc: func(ctx context.Context, sessionID string) (*service.MoveResult, error) {
			return nil, errors.New("nothing to undo")
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/undo", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleReset(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleGetHistory(t *testing.T) {
	mock := &MockGameService{
		GetMoveHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
			if opts.Page != 2 || opts.Limit != 5 {
				t.Errorf("expected page=2 limit=5, got page=%d limit=%d", opts.Page, opts.Limit)
			}
			return &service.HistoryResponse{Moves: []string{"R", "D"}, TotalMoves: 10, Page: opts.Page, PageSize: opts.Limit}, nil
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions/abcd/history?page=2&limit=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleSolve(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodPost, "/api/sessions/abcd/solve", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result service.SolveResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !result.Solved || result.Directions == "" {
		t.Errorf("expected a solved result, got %+v", result)
	}
}

func TestHandleListPuzzles(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/puzzles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var puzzles []*config.PuzzleInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &puzzles); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(puzzles) != 1 {
		t.Errorf("expected 1 puzzle, got %d", len(puzzles))
	}
}

func TestHandleHealth(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleWebSocketMissingSession(t *testing.T) {
	mock := &MockGameService{}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/ws", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleWebSocketUnknownSession(t *testing.T) {
	mock := &MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, errors.New("session not found")
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/ws?session=missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// TestRouteIDCapture guards against a routing regression where {id} stops
// capturing the session ID from the path.
func TestRouteIDCapture(t *testing.T) {
	mock := &MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			if sessionID != "xyz9" {
				t.Errorf("expected session ID 'xyz9' from the route, got %q", sessionID)
			}
			return &service.SessionInfo{ID: sessionID}, nil
		},
	}
	server := newTestServer(mock)

	rec := doRequest(t, server, http.MethodGet, "/api/sessions/xyz9", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
