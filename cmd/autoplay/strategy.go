package main

import "github.com/wricardo/mcp-training/hanoi/game/engine"

// Strategy picks the next move from the current state alone
type Strategy interface {
	NextMove(state *engine.GameState) (engine.Move, bool)
}

// IterativeStrategy plays the classic iterative solution: on even steps the
// smallest disk moves one peg around a fixed cycle, on odd steps the only
// legal move not touching it is made. From the starting arrangement it
// reaches the goal in the optimal number of moves.
type IterativeStrategy struct{}

// cycle returns the peg order the smallest disk follows. It moves towards
// the goal peg first when n is odd.
func (IterativeStrategy) cycle(n int) []engine.Peg {
	if n%2 == 1 {
		return []engine.Peg{engine.PegA, engine.PegC, engine.PegB}
	}
	return []engine.Peg{engine.PegA, engine.PegB, engine.PegC}
}

func (s IterativeStrategy) NextMove(state *engine.GameState) (engine.Move, bool) {
	if state == nil || state.Won {
		return engine.Move{}, false
	}

	smallest := pegOf(state, 1)
	if smallest == "" {
		return engine.Move{}, false
	}

	if state.Step%2 == 0 {
		order := s.cycle(state.N)
		for i, p := range order {
			if p == smallest {
				return engine.Move{Src: p, Dest: order[(i+1)%len(order)]}, true
			}
		}
		return engine.Move{}, false
	}

	var others []engine.Peg
	for _, p := range engine.Pegs {
		if p != smallest {
			others = append(others, p)
		}
	}
	a, b := others[0], others[1]
	switch {
	case legal(state, a, b):
		return engine.Move{Src: a, Dest: b}, true
	case legal(state, b, a):
		return engine.Move{Src: b, Dest: a}, true
	}
	return engine.Move{}, false
}

// pegOf returns the peg holding disk d
func pegOf(state *engine.GameState, d int) engine.Peg {
	for _, p := range engine.Pegs {
		for _, disk := range state.Towers[p] {
			if disk == d {
				return p
			}
		}
	}
	return ""
}

func top(state *engine.GameState, p engine.Peg) (int, bool) {
	disks := state.Towers[p]
	if len(disks) == 0 {
		return 0, false
	}
	return disks[len(disks)-1], true
}

func legal(state *engine.GameState, src, dest engine.Peg) bool {
	s, ok := top(state, src)
	if !ok {
		return false
	}
	d, ok := top(state, dest)
	return !ok || s < d
}

// ReplayStrategy plays a precomputed move list in order
type ReplayStrategy struct {
	moves []engine.Move
	next  int
}

func NewReplayStrategy(moves []engine.Move) *ReplayStrategy {
	return &ReplayStrategy{moves: moves}
}

func (s *ReplayStrategy) NextMove(state *engine.GameState) (engine.Move, bool) {
	if s.next >= len(s.moves) {
		return engine.Move{}, false
	}
	m := s.moves[s.next]
	s.next++
	return m, true
}
