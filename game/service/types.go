package service

import (
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// Envelope messages for rejected requests
const (
	MsgInvalidDiskCount = "Disk count must be between 3 and 10."
	MsgInvalidTowers    = "Invalid tower names."
	MsgInvalidMove      = "Invalid move."
	MsgSolvingStarted   = "Solving started."
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// Result is the response envelope of every game operation. Rejected input
// and illegal moves are reported with OK false, never as an error.
type Result struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message,omitempty"`
	State   *engine.GameState `json:"state,omitempty"`
	Moves   []engine.Move     `json:"moves,omitempty"`
}

// HistoryEntry is one applied move and the step it produced
type HistoryEntry struct {
	Step int        `json:"step"`
	Src  engine.Peg `json:"src"`
	Dest engine.Peg `json:"dest"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []HistoryEntry `json:"moves"`
	TotalMoves  int            `json:"total_moves"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}
