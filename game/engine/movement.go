package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrSourceEmpty  = fmt.Errorf("%w: source tower is empty", ErrInvalidMove)
	ErrDiskTooLarge = fmt.Errorf("%w: disk from source is larger than top disk in dest tower", ErrInvalidMove)
)

// checkMove reports why moving the top disk of src onto dest is illegal.
// src == dest is legal whenever src holds a disk.
func (e *GameEngine) checkMove(src, dest Peg) error {
	from, ok := e.towers[src]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPeg, src)
	}
	to, ok := e.towers[dest]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPeg, dest)
	}

	top, err := from.Peek()
	if err != nil {
		return ErrSourceEmpty
	}
	if destTop, err := to.Peek(); err == nil && top > destTop {
		return ErrDiskTooLarge
	}
	return nil
}

// transfer pops the top disk of src and pushes it onto dest. Callers have
// already established that src is non-empty.
func (e *GameEngine) transfer(src, dest Peg) {
	disk, err := e.towers[src].Pop()
	if err != nil {
		panic(fmt.Sprintf("engine: history out of sync with tower %s: %v", src, err))
	}
	e.towers[dest].Push(disk)
}

// MoveDisk moves the top disk of src onto dest. A rejected move leaves the
// towers, step count and histories untouched and returns an error matching
// ErrInvalidMove. When solving is set the call pauses for the configured
// solve delay after the move.
func (e *GameEngine) MoveDisk(src, dest Peg, solving bool) error {
	if err := e.checkMove(src, dest); err != nil {
		if errors.Is(err, ErrInvalidMove) {
			e.lastAction = fmt.Sprintf("Invalid move: %s.", reason(err))
		} else {
			e.lastAction = fmt.Sprintf("Invalid move: %v.", err)
		}
		e.notify(Event{Type: EventInvalid, Move: Move{Src: src, Dest: dest}, Step: e.step, Message: e.lastAction})
		return err
	}

	e.transfer(src, dest)
	e.step++
	e.lastAction = fmt.Sprintf("Step %d: Move disk from %s to %s.", e.step, src, dest)

	// Record for undo; a fresh move severs the redo branch
	e.moves.Push(Move{Src: src, Dest: dest})
	e.redo.Clear()

	e.notify(Event{Type: EventMove, Move: Move{Src: src, Dest: dest}, Step: e.step, Message: e.lastAction})

	e.CheckWin()

	if solving && e.solveDelay > 0 {
		e.sleep(e.solveDelay)
	}
	return nil
}

// UndoMove reverts the most recent applied move. It returns false when there
// is nothing to undo.
func (e *GameEngine) UndoMove() bool {
	m, err := e.moves.Pop()
	if err != nil {
		e.lastAction = "No moves to undo."
		e.notify(Event{Type: EventNoop, Step: e.step, Message: e.lastAction})
		return false
	}

	e.transfer(m.Dest, m.Src)
	e.step--
	e.lastAction = fmt.Sprintf("Step %d: Undo move from %s to %s.", e.step, m.Dest, m.Src)
	e.redo.Push(m)

	e.notify(Event{Type: EventUndo, Move: m, Step: e.step, Message: e.lastAction})
	return true
}

// RedoMove reapplies the most recently undone move. It returns false when
// there is nothing to redo.
func (e *GameEngine) RedoMove() bool {
	m, err := e.redo.Pop()
	if err != nil {
		e.lastAction = "No moves to redo."
		e.notify(Event{Type: EventNoop, Step: e.step, Message: e.lastAction})
		return false
	}

	e.transfer(m.Src, m.Dest)
	e.step++
	e.lastAction = fmt.Sprintf("Step %d: Redo move from %s to %s.", e.step, m.Src, m.Dest)
	e.moves.Push(m)

	e.notify(Event{Type: EventRedo, Move: m, Step: e.step, Message: e.lastAction})
	return true
}

// CanMove checks whether MoveDisk(src, dest) would succeed
func (e *GameEngine) CanMove(src, dest Peg) bool {
	return e.checkMove(src, dest) == nil
}

// PossibleMoves returns every legal move between distinct pegs
func (e *GameEngine) PossibleMoves() []Move {
	var possible []Move
	for _, src := range Pegs {
		for _, dest := range Pegs {
			if src != dest && e.CanMove(src, dest) {
				possible = append(possible, Move{Src: src, Dest: dest})
			}
		}
	}
	return possible
}

// reason strips the ErrInvalidMove prefix from a move error
func reason(err error) string {
	msg := err.Error()
	prefix := ErrInvalidMove.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
