// Package websocket provides WebSocket transport for spectating puzzle sessions.
//
// The websocket package implements:
//   - One-way, server-to-client push of session updates
//   - Session-aware WebSocket connections
//   - State broadcasting through BroadcastToSession and BroadcastEvent
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded with the following structure:
//   - Incoming: not processed; the connection is read-only for spectators
//   - Outgoing: the session's rendered board after each move
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection; the
// api package's /ws handler checks that the session exists before handing
// the request to the hub. State updates are broadcast only to clients
// connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler, once the session ID is known
//	hub.ServeWS(w, r, sessionID)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state_update messages as moves are made (nothing is
// sent on connect)
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub serialises registration, unregistration and queued events
// through channels handled by Run; each client has its own read and
// write goroutines.
package websocket
