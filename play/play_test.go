package play

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

func run(t *testing.T, input string) (*Game, string) {
	t.Helper()
	var out bytes.Buffer
	g := New(strings.NewReader(input), &out)
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return g, out.String()
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Expected output to contain %q\n--- output ---\n%s", w, output)
		}
	}
}

func TestRun_DiskCountPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		retries  int
	}{
		{"valid first try", "4\n6\n", 4, 0},
		{"below range then valid", "2\n3\n6\n", 3, 1},
		{"non-numeric then too large then valid", "abc\n11\n10\n6\n", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, output := run(t, tt.input)

			if got := g.Engine().DiskCount(); got != tt.expected {
				t.Errorf("Expected %d disks, got %d", tt.expected, got)
			}
			if got := strings.Count(output, "Please enter a valid number of disks (3-10): "); got != tt.retries {
				t.Errorf("Expected %d retry prompts, got %d", tt.retries, got)
			}
			assertContains(t, output, "Welcome to the Tower of Hanoi Game!", "Enter number of disks (3-10): ")
		})
	}
}

func TestRun_EndOfInputExits(t *testing.T) {
	t.Run("during disk prompt", func(t *testing.T) {
		g, output := run(t, "")
		if g.Engine() != nil {
			t.Error("Engine should not be created without a disk count")
		}
		assertContains(t, output, "Exiting the game. Goodbye!")
	})

	t.Run("at menu", func(t *testing.T) {
		_, output := run(t, "3\n")
		assertContains(t, output, "6. Exit", "Exiting the game. Goodbye!")
	})
}

func TestRun_MoveUndoRedo(t *testing.T) {
	g, output := run(t, "3\n2\na\nc\n3\n4\n6\n")

	assertContains(t, output,
		"Step 1\nMoving disk from A to C\nTower A: [3 2]\nTower B: []\nTower C: [1]",
		"Step 0\nUndoing move: moving disk from C to A\nTower A: [3 2 1]",
		"Step 1\nRedoing move: moving disk from A to C",
	)

	eng := g.Engine()
	if eng.Step() != 1 || !eng.CanUndo() || eng.CanRedo() {
		t.Errorf("Unexpected final engine state: step=%d undo=%t redo=%t", eng.Step(), eng.CanUndo(), eng.CanRedo())
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unknown tower", "3\n2\nA\nD\n6\n", "Invalid tower names. Please use A, B, or C."},
		{"menu choice out of range", "3\n7\n6\n", "Invalid choice. Please enter a number between 1 and 6."},
		{"empty source", "3\n2\nB\nA\n6\n", "Invalid move: source tower is empty."},
		{"larger onto smaller", "3\n2\nA\nB\n2\nA\nB\n6\n", "Invalid move: disk from source is larger than top disk in dest tower."},
		{"nothing to undo", "3\n3\n6\n", "No moves to undo."},
		{"nothing to redo", "3\n4\n6\n", "No moves to redo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output := run(t, tt.input)
			assertContains(t, output, tt.expected)
		})
	}
}

func TestRun_Reset(t *testing.T) {
	g, output := run(t, "3\n2\nA\nC\n1\n6\n")

	assertContains(t, output, "Game reset.\nTower A: [3 2 1]\nTower B: []\nTower C: []")
	if g.Engine().Step() != 0 || g.Engine().CanUndo() {
		t.Error("Reset should clear step and history")
	}
}

func TestRun_Solve(t *testing.T) {
	g, output := run(t, "3\n2\nA\nB\n5\n6\n")

	assertContains(t, output,
		"Solving for 3 disks\nStarting arrangement:\nTower A: [3 2 1]",
		"Step 7\nMoving disk from A to C",
		"You win!\nTotal steps taken: 7\nOptimal steps expected (2^3 - 1): 7",
	)

	eng := g.Engine()
	if !eng.IsWon() || eng.Step() != 7 {
		t.Errorf("Expected solved game at step 7, got step %d", eng.Step())
	}
	if got := eng.Tower(engine.PegC); len(got) != 3 {
		t.Errorf("Expected all disks on C, got %v", got)
	}
}

func TestRun_ClearScreen(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out, WithClearScreen(true)).Run(context.Background())

	if !strings.HasPrefix(out.String(), "\033c") {
		t.Error("Expected clear-screen sequence before the banner")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(strings.NewReader("3\n2\nA\nC\n"), &out).Run(ctx)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
