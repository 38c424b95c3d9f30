package engine

import "fmt"

// EnumerateSolution returns the optimal move sequence for moving n disks from
// src to dest using aux. It touches no engine state and yields exactly the
// moves SolveRecursive would apply.
func EnumerateSolution(n int, src, dest, aux Peg) []Move {
	moves := make([]Move, 0, OptimalMoves(n))
	return appendSolution(moves, n, src, dest, aux)
}

func appendSolution(moves []Move, n int, src, dest, aux Peg) []Move {
	if n <= 0 {
		return moves
	}
	if n == 1 {
		return append(moves, Move{Src: src, Dest: dest})
	}
	moves = appendSolution(moves, n-1, src, aux, dest)
	moves = append(moves, Move{Src: src, Dest: dest})
	return appendSolution(moves, n-1, aux, dest, src)
}

// SolveRecursive moves n disks from src to dest through real MoveDisk calls,
// each one recorded in history and subject to the solve delay.
func (e *GameEngine) SolveRecursive(n int, src, dest, aux Peg) {
	if n <= 0 {
		return
	}
	if n == 1 {
		e.MoveDisk(src, dest, true)
		return
	}

	e.SolveRecursive(n-1, src, aux, dest)
	e.MoveDisk(src, dest, true)
	e.SolveRecursive(n-1, aux, dest, src)
}

// Solve restarts the puzzle from the initial arrangement and plays the
// optimal solution onto the goal peg.
func (e *GameEngine) Solve() {
	e.ResetStep()
	e.ResetTowers()
	e.ResetHistories()
	e.lastAction = fmt.Sprintf("Solving for %d disks.", e.n)
	e.notify(Event{Type: EventSolve, Message: e.lastAction})

	if e.solveDelay > 0 {
		e.sleep(e.solveDelay)
	}

	e.SolveRecursive(e.n, PegA, GoalPeg, PegB)
}
