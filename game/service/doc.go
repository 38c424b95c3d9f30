// Package service provides the business logic layer for the Tower of Hanoi
// game server.
//
// The service package implements:
//   - Multi-session game management, including an always-available default
//     session
//   - Input validation for disk counts and tower labels
//   - Per-session serialization of every engine operation
//   - Response envelopes shared by the REST, WebSocket and MCP transports
//   - Paginated move history
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Engines perform no locking, so each operation takes the
// session's exclusive lock for the read-or-mutate step and the snapshot that
// follows it.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr, 3)
//
//	info, err := gameService.CreateSession(ctx, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, "a", "c")
//	// result.OK is false for illegal moves; err is reserved for missing sessions
//
// Envelopes:
//
// Rejected input never changes game state. An out-of-range disk count yields
// MsgInvalidDiskCount, unknown tower labels yield MsgInvalidTowers, and an
// illegal move yields MsgInvalidMove together with the unchanged state.
package service
