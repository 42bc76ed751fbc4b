// Package mcp provides a Model Context Protocol server for the puzzle solver.
//
// The mcp package implements:
//   - An MCP server for AI agent integration
//   - Tool definitions for puzzle session operations
//   - Session-aware command execution
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - render: Get the current rendered board for a session
//   - move: Execute a single directional push
//   - bulk_move: Execute a sequence of pushes encoded as one action string
//   - undo: Undo the last move
//   - reset_session: Reset a session to the puzzle's initial state
//   - move_history: Retrieve move history with pagination
//   - create_session: Create a new puzzle session, optionally by puzzle name
//   - get_session / delete_session: Inspect or remove a specific session
//   - list_sessions: List all active sessions
//   - list_puzzles: List available puzzle maps
//   - solve: Ask the built-in solver for a winning push sequence
//   - puzzle_instructions: Get the rules of the puzzle and move codec
//
// Transport:
//
// Client is a thin proxy: every tool call is translated into an HTTP
// request against the REST API and the JSON response is reformatted as
// plain text for the calling agent.
//
// Session Management:
//
// All gameplay tools take a required session_id parameter; sessions are
// created via create_session and may be played independently and
// concurrently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
