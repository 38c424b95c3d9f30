// Package session provides in-memory session management for the Tower of
// Hanoi server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Expiry of idle sessions
//
// Core Types:
//
// Manager is the session registry. Each service.Session it hands out owns
// one engine and carries its own lock; the Manager's lock only guards the
// registry map and access timestamps.
//
// Session Identifiers:
//
// Generated IDs are 4 lowercase hex characters from crypto/rand. Callers may
// also pick their own ID (the server uses "default" for the single-game
// routes). Lookups are case-insensitive.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
//
// Sessions are never persisted; a restart starts with an empty registry.
package session
