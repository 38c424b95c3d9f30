package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// State
	GetState() *GameState
	DiskCount() int
	Step() int
	LastAction() string
	Tower(p Peg) []int
	IsWon() bool

	// Moves
	MoveDisk(src, dest Peg, solving bool) error
	CanMove(src, dest Peg) bool
	PossibleMoves() []Move

	// History
	UndoMove() bool
	RedoMove() bool
	CanUndo() bool
	CanRedo() bool
	MoveHistory() []Move

	// Lifecycle
	CheckWin() bool
	ResetStep()
	ResetTowers()
	ResetHistories()
	Reset(n int)
	SetLastAction(msg string)

	// Solving
	SolveRecursive(n int, src, dest, aux Peg)
	Solve()
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; callers serialize access.
type GameEngine struct {
	n          int
	towers     map[Peg]*Stack[int]
	step       int
	lastAction string
	moves      *Stack[Move]
	redo       *Stack[Move]

	solveDelay time.Duration
	sleep      func(time.Duration)
	observer   Observer
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithSolveDelay sets the pause after each move made while solving. Zero
// disables the pause.
func WithSolveDelay(d time.Duration) Option {
	return func(e *GameEngine) {
		e.solveDelay = d
	}
}

// WithObserver registers a callback invoked after every mutation
func WithObserver(o Observer) Option {
	return func(e *GameEngine) {
		e.observer = o
	}
}

// withSleep replaces time.Sleep, for tests
func withSleep(fn func(time.Duration)) Option {
	return func(e *GameEngine) {
		e.sleep = fn
	}
}

// NewEngine creates an engine with n disks stacked on PegA
func NewEngine(n int, opts ...Option) *GameEngine {
	e := &GameEngine{
		n:     n,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ResetStep()
	e.ResetTowers()
	e.ResetHistories()
	e.lastAction = readyMessage(n)

	return e
}

// GetState returns a snapshot of the current state
func (e *GameEngine) GetState() *GameState {
	towers := make(map[Peg][]int, len(Pegs))
	for _, p := range Pegs {
		towers[p] = e.towers[p].Items()
	}
	return &GameState{
		N:          e.n,
		Step:       e.step,
		LastAction: e.lastAction,
		Towers:     towers,
		Optimal:    OptimalMoves(e.n),
		Won:        e.IsWon(),
		CanUndo:    e.CanUndo(),
		CanRedo:    e.CanRedo(),
	}
}

// DiskCount returns the number of disks
func (e *GameEngine) DiskCount() int {
	return e.n
}

// Step returns the number of forward moves currently applied
func (e *GameEngine) Step() int {
	return e.step
}

// LastAction returns the description of the most recent operation
func (e *GameEngine) LastAction() string {
	return e.lastAction
}

// SetLastAction overrides the last action message
func (e *GameEngine) SetLastAction(msg string) {
	e.lastAction = msg
}

// Tower returns the disks on a peg, bottom first
func (e *GameEngine) Tower(p Peg) []int {
	t, ok := e.towers[p]
	if !ok {
		return nil
	}
	return t.Items()
}

// IsWon reports whether the goal peg holds every disk. Unlike CheckWin it
// does not touch the last action.
func (e *GameEngine) IsWon() bool {
	return e.towers[GoalPeg].Size() == e.n
}

// CheckWin reports whether the puzzle is solved and records a summary
func (e *GameEngine) CheckWin() bool {
	if !e.IsWon() {
		return false
	}

	e.lastAction = fmt.Sprintf("You win! Steps: %d. Optimal: %d.", e.step, OptimalMoves(e.n))
	e.notify(Event{Type: EventWin, Step: e.step, Message: e.lastAction})
	return true
}

// ResetStep sets the step count to zero
func (e *GameEngine) ResetStep() {
	e.step = 0
}

// ResetTowers puts every disk back on PegA
func (e *GameEngine) ResetTowers() {
	e.towers = initTowers(e.n)
}

// ResetHistories clears both undo and redo histories
func (e *GameEngine) ResetHistories() {
	e.moves = NewStack[Move](0)
	e.redo = NewStack[Move](0)
}

// Reset reinitializes the engine with n disks
func (e *GameEngine) Reset(n int) {
	e.n = n
	e.ResetStep()
	e.ResetTowers()
	e.ResetHistories()
	e.lastAction = readyMessage(n)
	e.notify(Event{Type: EventReset, Message: e.lastAction})
}

// CanUndo reports whether there is a move to undo
func (e *GameEngine) CanUndo() bool {
	return !e.moves.IsEmpty()
}

// CanRedo reports whether there is an undone move to redo
func (e *GameEngine) CanRedo() bool {
	return !e.redo.IsEmpty()
}

// MoveHistory returns the applied moves, oldest first
func (e *GameEngine) MoveHistory() []Move {
	return e.moves.Items()
}

func (e *GameEngine) notify(ev Event) {
	if e.observer != nil {
		e.observer(e, ev)
	}
}
