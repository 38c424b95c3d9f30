// Package api provides the HTTP REST API for the Tower of Hanoi server.
//
// Single-game routes act on the default session:
//
//   - GET /state - current state
//   - POST /reset - start over, body {"n": 3..10}
//   - POST /move - body {"src": "A", "dest": "C"}
//   - POST /undo, POST /redo
//   - POST /solve - reset and return the optimal move list
//
// Session routes mirror them under /api/sessions/{id}:
//
//   - POST /api/sessions - create, body {"n": 4}
//   - GET /api/sessions - list, ?sort=created|accessed&order=asc|desc&limit=N
//   - GET /api/sessions/{id}, DELETE /api/sessions/{id}
//   - GET /api/sessions/{id}/state
//   - POST /api/sessions/{id}/reset|move|undo|redo|solve
//   - GET /api/sessions/{id}/history?page=1&limit=20&order=desc
//
// GET /api/health reports liveness and GET /ws?session={id} upgrades to a
// WebSocket that receives state updates for that session. Everything else is
// served from the embedded browser client.
//
// Game operations answer HTTP 200 with an envelope:
//
//	{"ok": false, "message": "Invalid move.", "state": {...}}
//
// Unknown sessions are 404, malformed bodies are 400 and an exhausted session
// ID space is 409, all as {"error": "..."}.
package api
