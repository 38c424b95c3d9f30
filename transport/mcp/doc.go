// Package mcp exposes the Tower of Hanoi REST API as Model Context Protocol
// tools.
//
// Client proxies every tool call to a running API server over HTTP and
// renders the responses as text for the agent:
//   - create_session, list_sessions
//   - game_state, move, undo, redo, reset_game
//   - solve: optimal move list, optionally replayed move by move
//   - move_history, game_instructions
//
// Game tools take an optional session_id; without it they act on the
// default session shared with the single-game HTTP routes.
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST /mcp forwards the JSON-RPC body to GetMCPServer().HandleMessage
package mcp
