package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions     SessionManager
	defaultDisks int
}

// NewGameService creates a new game service instance. defaultDisks sizes the
// default session when it is first created.
func NewGameService(sessions SessionManager, defaultDisks int) GameService {
	if engine.ValidateDiskCount(defaultDisks) != nil {
		defaultDisks = engine.DefaultDisks
	}
	return &gameServiceImpl{
		sessions:     sessions,
		defaultDisks: defaultDisks,
	}
}

// lookup resolves a session, creating the default session on demand
func (s *gameServiceImpl) lookup(sessionID string) (*Session, error) {
	var (
		sess *Session
		err  error
	)
	if strings.EqualFold(sessionID, DefaultSessionID) {
		sess, err = s.sessions.GetOrCreate(DefaultSessionID, s.defaultDisks)
	} else {
		sess, err = s.sessions.Get(sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// withSession runs fn with the session locked for its whole duration
func (s *gameServiceImpl) withSession(sessionID string, fn func(sess *Session) error) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	s.sessions.UpdateLastAccessed(sess.ID)
	return fn(sess)
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
	}
}

// CreateSession creates a new game session with n disks
func (s *gameServiceImpl) CreateSession(ctx context.Context, n int) (*SessionInfo, error) {
	if err := engine.ValidateDiskCount(n); err != nil {
		return nil, err
	}

	// Let session manager generate a proper 4-character ID
	sess, err := s.sessions.Create("", n)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	var info *SessionInfo
	err := s.withSession(sessionID, func(sess *Session) error {
		info = sessionInfo(sess)
		return nil
	})
	return info, err
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		sess.Lock()
		result = append(result, sessionInfo(sess))
		sess.Unlock()
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	return nil
}

// Reset reinitializes a session with n disks. An out-of-range n is rejected
// and the game is left as it was.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string, n int) (*Result, error) {
	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		if engine.ValidateDiskCount(n) != nil {
			result = &Result{OK: false, Message: MsgInvalidDiskCount}
			return nil
		}

		sess.Engine.Reset(n)
		result = &Result{OK: true, State: sess.Engine.GetState()}
		return nil
	})
	return result, err
}

// Move moves the top disk of src onto dest. Labels are case-insensitive.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, src, dest string) (*Result, error) {
	from, srcErr := engine.ParsePeg(src)
	to, destErr := engine.ParsePeg(dest)

	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		if srcErr != nil || destErr != nil {
			result = &Result{OK: false, Message: MsgInvalidTowers}
			return nil
		}

		if err := sess.Engine.MoveDisk(from, to, false); err != nil {
			result = &Result{OK: false, Message: MsgInvalidMove, State: sess.Engine.GetState()}
			return nil
		}

		result = &Result{OK: true, State: sess.Engine.GetState()}
		return nil
	})
	return result, err
}

// Undo reverts the last move. An empty history is not an error.
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*Result, error) {
	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		sess.Engine.UndoMove()
		result = &Result{OK: true, State: sess.Engine.GetState()}
		return nil
	})
	return result, err
}

// Redo reapplies the last undone move. An empty redo history is not an error.
func (s *gameServiceImpl) Redo(ctx context.Context, sessionID string) (*Result, error) {
	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		sess.Engine.RedoMove()
		result = &Result{OK: true, State: sess.Engine.GetState()}
		return nil
	})
	return result, err
}

// Solve puts the puzzle back at its starting arrangement and returns the
// optimal move list for the client to play back. Nothing is applied.
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*Result, error) {
	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		eng := sess.Engine
		eng.ResetStep()
		eng.ResetTowers()
		eng.ResetHistories()
		eng.SetLastAction(MsgSolvingStarted)

		result = &Result{
			OK:    true,
			State: eng.GetState(),
			Moves: engine.EnumerateSolution(eng.DiskCount(), engine.PegA, engine.GoalPeg, engine.PegB),
		}
		return nil
	})
	return result, err
}

// GetGameState returns the current state of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*Result, error) {
	var result *Result
	err := s.withSession(sessionID, func(sess *Session) error {
		result = &Result{OK: true, State: sess.Engine.GetState()}
		return nil
	})
	return result, err
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	var history []engine.Move
	err := s.withSession(sessionID, func(sess *Session) error {
		history = sess.Engine.MoveHistory()
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	moves := []HistoryEntry{}
	if opts.Page > totalPages {
		// Past the last page: empty, and keeps the arithmetic below in range
		return &HistoryResponse{
			Moves:       moves,
			TotalMoves:  total,
			Page:        opts.Page,
			PageSize:    opts.Limit,
			TotalPages:  totalPages,
			HasNext:     false,
			HasPrevious: true,
		}, nil
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, historyEntry(i, history[i]))
		}
	} else {
		for i := start; i < end; i++ {
			moves = append(moves, historyEntry(i, history[i]))
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

func historyEntry(i int, m engine.Move) HistoryEntry {
	return HistoryEntry{Step: i + 1, Src: m.Src, Dest: m.Dest}
}
