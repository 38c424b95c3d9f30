package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

func TestAnalyze(t *testing.T) {
	for n := engine.MinDisks; n <= engine.MaxDisks; n++ {
		a := analyze(n)

		if !a.Verified {
			t.Errorf("n=%d: expected solution to verify", n)
		}
		if a.Moves != a.Optimal || a.Optimal != (1<<n)-1 {
			t.Errorf("n=%d: expected %d moves, got %d (optimal %d)", n, (1<<n)-1, a.Moves, a.Optimal)
		}

		// Disk k moves 2^(n-k) times
		for k := 1; k <= n; k++ {
			if want := 1 << (n - k); a.DiskMoves[k] != want {
				t.Errorf("n=%d: disk %d moved %d times, expected %d", n, k, a.DiskMoves[k], want)
			}
		}

		if n%2 == 1 && a.Last != (engine.Move{Src: engine.PegA, Dest: engine.PegC}) {
			t.Errorf("n=%d: unexpected last move %v", n, a.Last)
		}
	}
}

func TestAnalyze_FirstMove(t *testing.T) {
	tests := []struct {
		n        int
		expected engine.Move
	}{
		{3, engine.Move{Src: engine.PegA, Dest: engine.PegC}},
		{4, engine.Move{Src: engine.PegA, Dest: engine.PegB}},
		{5, engine.Move{Src: engine.PegA, Dest: engine.PegC}},
	}

	for _, test := range tests {
		if got := analyze(test.n).First; got != test.expected {
			t.Errorf("analyze(%d).First = %v, expected %v", test.n, got, test.expected)
		}
	}
}

func TestAnalyze_PegTraffic(t *testing.T) {
	a := analyze(3)

	out, in := 0, 0
	for _, p := range engine.Pegs {
		out += a.PegOut[p]
		in += a.PegIn[p]
	}
	if out != 7 || in != 7 {
		t.Errorf("Expected 7 moves out and in, got %d/%d", out, in)
	}
	if a.PegIn[engine.PegA] != 1 || a.PegOut[engine.PegA] != 4 {
		t.Errorf("Unexpected tower A traffic %d/%d", a.PegOut[engine.PegA], a.PegIn[engine.PegA])
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, 3, 4); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"=== Analyzing 3 disks ===",
		"=== Analyzing 4 disks ===",
		"Moves: 15 (optimal 2^4 - 1 = 15)",
		"Disk 4: 1",
		"✅ Replay reaches tower C in 7 moves",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRun_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"below minimum", 2, 5},
		{"above maximum", 3, 11},
		{"reversed", 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(&buf, tt.lo, tt.hi); err == nil {
				t.Error("Expected error")
			}
			if buf.Len() != 0 {
				t.Errorf("Expected no output, got %q", buf.String())
			}
		})
	}
}
