// Package service provides the business logic layer for the Parabox puzzle server.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Puzzle loading through a ConfigManager
//   - Move processing, bulk moves, undo and reset
//   - Session lifecycle management
//   - Move history tracking and solving
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads and lists puzzle maps.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, puzzle loading, and
// business logic orchestration. Each session holds its own engine state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, err := config.NewManager("maps")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "recursive_enter")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute a move
//	result, err := gameService.Move(ctx, sessionInfo.ID, "R")
//
// Session Management:
//
// Generated session IDs are 4-character hex strings, and each session keeps
// independent puzzle state. Multiple sessions can run concurrently on different
// puzzles. Sessions track creation time, last access time, and move
// history.
package service
