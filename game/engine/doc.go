// Package engine provides the core puzzle logic for the Tower of Hanoi game.
//
// The engine package implements:
//   - Three-peg state with disks stacked largest to smallest
//   - Move validation against the size-ordering rule
//   - Undo/redo history with redo branch severing on new moves
//   - Win detection against the goal peg
//   - Recursive solving, either applied move by move or enumerated
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Stack is the LIFO container each peg and each
// history is built on. GameState is a serializable snapshot.
//
// Usage:
//
//	eng := engine.NewEngine(3)
//
//	if err := eng.MoveDisk(engine.PegA, engine.PegC, false); err != nil {
//		// errors.Is(err, engine.ErrInvalidMove)
//	}
//	eng.UndoMove()
//	eng.RedoMove()
//
//	moves := engine.EnumerateSolution(3, engine.PegA, engine.PegC, engine.PegB)
//
// Concurrency:
//
// A GameEngine performs no locking and no I/O. Callers that share one
// engine across goroutines must serialize every operation.
//
// Rules:
//
// Only the top disk of a peg may move, and it may never land on a smaller
// disk. The puzzle is won when the goal peg (C) holds every disk; the engine
// keeps accepting moves after a win.
package engine
