package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnumerateSolution_ThreeDisks(t *testing.T) {
	got := EnumerateSolution(3, PegA, PegC, PegB)
	want := []Move{
		{PegA, PegC}, {PegA, PegB}, {PegC, PegB}, {PegA, PegC},
		{PegB, PegA}, {PegB, PegC}, {PegA, PegC},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEnumerateSolution_Lengths(t *testing.T) {
	for n := 0; n <= MaxDisks; n++ {
		moves := EnumerateSolution(n, PegA, PegC, PegB)
		if len(moves) != OptimalMoves(n) {
			t.Errorf("n=%d: expected %d moves, got %d", n, OptimalMoves(n), len(moves))
		}
	}
}

func TestEnumerateSolution_Replays(t *testing.T) {
	for n := MinDisks; n <= MaxDisks; n++ {
		e := NewEngine(n)
		for i, m := range EnumerateSolution(n, PegA, PegC, PegB) {
			if err := e.MoveDisk(m.Src, m.Dest, false); err != nil {
				t.Fatalf("n=%d: move %d (%v) rejected: %v", n, i, m, err)
			}
		}
		if !e.CheckWin() {
			t.Errorf("n=%d: expected win after replay", n)
		}
		if e.Step() != OptimalMoves(n) {
			t.Errorf("n=%d: expected %d steps, got %d", n, OptimalMoves(n), e.Step())
		}
	}
}

func TestEnumerateSolution_DoesNotTouchEngine(t *testing.T) {
	e := NewEngine(3)
	e.MoveDisk(PegA, PegB, false)
	before := e.GetState()

	EnumerateSolution(3, PegA, PegC, PegB)

	if !reflect.DeepEqual(before, e.GetState()) {
		t.Error("EnumerateSolution changed engine state")
	}
}

func TestSolve(t *testing.T) {
	e := NewEngine(3)
	e.MoveDisk(PegA, PegB, false)
	e.MoveDisk(PegA, PegC, false)
	e.UndoMove()

	e.Solve()

	assertTowers(t, e, nil, nil, []int{3, 2, 1})
	if e.Step() != 7 {
		t.Errorf("Expected 7 steps, got %d", e.Step())
	}
	if e.CanRedo() {
		t.Error("Expected redo history cleared by solve")
	}
	if !reflect.DeepEqual(e.MoveHistory(), EnumerateSolution(3, PegA, PegC, PegB)) {
		t.Errorf("Expected history to match enumerated solution, got %v", e.MoveHistory())
	}
	if e.LastAction() != "You win! Steps: 7. Optimal: 7." {
		t.Errorf("Unexpected last action %q", e.LastAction())
	}
	assertInvariants(t, e)
}

func TestSolve_Events(t *testing.T) {
	counts := map[EventType]int{}
	e := NewEngine(4, WithObserver(func(_ *GameEngine, ev Event) {
		counts[ev.Type]++
	}))

	e.Solve()

	if counts[EventSolve] != 1 {
		t.Errorf("Expected 1 solve event, got %d", counts[EventSolve])
	}
	if counts[EventMove] != 15 {
		t.Errorf("Expected 15 move events, got %d", counts[EventMove])
	}
	if counts[EventWin] != 1 {
		t.Errorf("Expected 1 win event, got %d", counts[EventWin])
	}
	if counts[EventInvalid] != 0 {
		t.Errorf("Expected no invalid moves while solving, got %d", counts[EventInvalid])
	}
}

func TestValidateDiskCount(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{2, true},
		{3, false},
		{7, false},
		{10, false},
		{11, true},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateDiskCount(tt.n)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDiskCount) {
				t.Errorf("n=%d: expected ErrInvalidDiskCount, got %v", tt.n, err)
			}
		} else if err != nil {
			t.Errorf("n=%d: expected no error, got %v", tt.n, err)
		}
	}
}

func TestParsePeg(t *testing.T) {
	tests := []struct {
		in      string
		want    Peg
		wantErr bool
	}{
		{"A", PegA, false},
		{"b", PegB, false},
		{" c ", PegC, false},
		{"D", "", true},
		{"", "", true},
		{"AB", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePeg(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPeg) {
				t.Errorf("ParsePeg(%q): expected ErrInvalidPeg, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePeg(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestValidateTowers(t *testing.T) {
	tests := []struct {
		name    string
		towers  map[Peg][]int
		wantErr bool
	}{
		{"initial", map[Peg][]int{PegA: {3, 2, 1}}, false},
		{"spread", map[Peg][]int{PegA: {3}, PegB: {2}, PegC: {1}}, false},
		{"larger on smaller", map[Peg][]int{PegA: {3, 1, 2}}, true},
		{"missing disk", map[Peg][]int{PegA: {3, 2}}, true},
		{"duplicate disk", map[Peg][]int{PegA: {3, 2}, PegB: {2}}, true},
		{"out of range", map[Peg][]int{PegA: {4, 2, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTowers(3, tt.towers)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOptimalMoves(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 3: 7, 4: 15, 10: 1023}
	for n, want := range cases {
		if got := OptimalMoves(n); got != want {
			t.Errorf("OptimalMoves(%d) = %d, want %d", n, got, want)
		}
	}
}
