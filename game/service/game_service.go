package service

import (
	"context"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// DefaultSessionID names the session behind the single-game routes. It is
// created on first use and recreated if deleted.
const DefaultSessionID = "default"

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, n int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Reset(ctx context.Context, sessionID string, n int) (*Result, error)
	Move(ctx context.Context, sessionID, src, dest string) (*Result, error)
	Undo(ctx context.Context, sessionID string) (*Result, error)
	Redo(ctx context.Context, sessionID string) (*Result, error)
	Solve(ctx context.Context, sessionID string) (*Result, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*Result, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, n int) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, n int) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// Session represents an active game session. Every read or mutation of
// Engine happens with the session locked.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time

	mu sync.Mutex
}

// Lock acquires the session's exclusive lock
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's exclusive lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}
