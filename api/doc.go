// Package api provides the HTTP REST API for the Parabox puzzle server.
//
// The api package implements:
//   - Session management endpoints
//   - Per-session move, bulk-move, undo, reset, history and solve endpoints
//   - Puzzle listing
//   - WebSocket upgrade handling for spectators
//   - A health check
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List sessions (query: sort=created|accessed, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Puzzle Operations (under /api/sessions/{id}):
//   - GET /render - Get the rendered board
//   - POST /move - Apply one move, body {"direction": "R"}
//   - POST /bulk-move - Apply an action string, body {"directions": "RRUD"}
//   - POST /undo - Undo the last move
//   - POST /reset - Reset to the puzzle's initial state
//   - GET /history - Get move history (query: page, limit, order)
//   - POST /solve - Run the solver on the current state
//
// Other:
//   - GET /api/puzzles - List available puzzles
//   - GET /ws?session={id} - WebSocket spectator connection
//   - GET /healthz - Health check
//
// Request/Response Format:
//
// All API endpoints accept and return JSON.
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with an appropriate HTTP status code:
//
//	{
//	  "error": "error message"
//	}
package api
