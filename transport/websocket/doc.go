// Package websocket provides WebSocket transport for the Tower of Hanoi
// game server.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - State broadcasting after every mutation
//   - Solve notifications carrying the move list
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. The Hub's Run goroutine is the only code that
// touches the client map; everything else talks to it over channels. Each
// client connection has a read pump and a write pump goroutine.
//
// Message Protocol:
//
// Messages are JSON objects, one per frame:
//
//	{"session_id": "ab12", "event": "state_update", "state": {...}}
//	{"session_id": "ab12", "event": "solve_started", "state": {...}, "data": [{"src":"A","dest":"C"}, ...]}
//
// Incoming messages from clients are read and discarded.
//
// Session Integration:
//
// Clients choose a session with the query parameter ?session=<id>. State
// updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	hub.ServeWS(w, r, sessionID)
//	hub.BroadcastToSession(sessionID, state)
//
// Concurrency:
//
// Broadcast methods never block: when the queue is full the message is
// dropped and a warning is logged.
package websocket
