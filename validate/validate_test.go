package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

func writeSolution(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solution.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write solution: %v", err)
	}
	return path
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

const optimalThree = `{
	"name": "Three disks",
	"n": 3,
	"moves": [
		{"src": "A", "dest": "C"},
		{"src": "A", "dest": "B"},
		{"src": "C", "dest": "B"},
		{"src": "A", "dest": "C"},
		{"src": "B", "dest": "A"},
		{"src": "B", "dest": "C"},
		{"src": "A", "dest": "C"}
	]
}`

func TestValidateSolution_Optimal(t *testing.T) {
	path := writeSolution(t, optimalThree)

	result := validateSolution(path)
	if !result.Valid {
		t.Fatalf("Expected valid solution, but got errors: %v", result.Errors)
	}
	if result.File != "solution.json" {
		t.Errorf("Expected file name solution.json, got %s", result.File)
	}
	if !containsError(result.Errors, "Solved in 7 moves (optimal)") {
		t.Errorf("Expected optimal summary, got %v", result.Errors)
	}
	if !containsError(result.Errors, "✓ Name: Three disks") {
		t.Errorf("Expected name line, got %v", result.Errors)
	}
}

func TestValidateSolution_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "invalid JSON",
			content:  `{"name": "test", invalid json}`,
			expected: "Invalid JSON",
		},
		{
			name:     "disk count too small",
			content:  `{"n": 2, "moves": [{"src": "A", "dest": "B"}]}`,
			expected: "invalid disk count",
		},
		{
			name:     "no moves",
			content:  `{"n": 3, "moves": []}`,
			expected: "Solution has no moves",
		},
		{
			name:     "bad tower label",
			content:  `{"n": 3, "moves": [{"src": "A", "dest": "D"}]}`,
			expected: `Invalid tower name in move 1: "A" -> "D"`,
		},
		{
			name:     "larger on smaller",
			content:  `{"n": 3, "moves": [{"src": "A", "dest": "B"}, {"src": "A", "dest": "B"}]}`,
			expected: "Illegal move 2 (A -> B)",
		},
		{
			name:     "empty source",
			content:  `{"n": 3, "moves": [{"src": "B", "dest": "A"}]}`,
			expected: "source tower is empty",
		},
		{
			name:     "unfinished",
			content:  `{"n": 3, "moves": [{"src": "A", "dest": "C"}]}`,
			expected: "Puzzle not solved after 1 moves",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateSolution(writeSolution(t, tt.content))
			if result.Valid {
				t.Fatal("Expected invalid solution")
			}
			if !containsError(result.Errors, tt.expected) {
				t.Errorf("Expected error containing %q, got %v", tt.expected, result.Errors)
			}
		})
	}
}

func TestValidateSolution_MissingFile(t *testing.T) {
	result := validateSolution(filepath.Join(t.TempDir(), "missing.json"))
	if result.Valid || !containsError(result.Errors, "Failed to read file") {
		t.Errorf("Expected read failure, got %+v", result)
	}
}

func TestReplaySolution(t *testing.T) {
	optimal := engine.EnumerateSolution(4, engine.PegA, engine.PegC, engine.PegB)

	t.Run("over optimal", func(t *testing.T) {
		detour := append([]engine.Move{{Src: engine.PegA, Dest: engine.PegB}, {Src: engine.PegB, Dest: engine.PegA}}, optimal...)
		result := replaySolution(4, detour)
		if !result.Valid {
			t.Fatalf("Expected valid replay, got %v", result.Errors)
		}
		if !containsError(result.Errors, "17 moves (2 over optimal 15)") {
			t.Errorf("Unexpected summary %v", result.Errors)
		}
	})

	t.Run("moves after win", func(t *testing.T) {
		extra := append(append([]engine.Move{}, optimal...), engine.Move{Src: engine.PegC, Dest: engine.PegB})
		result := replaySolution(4, extra)
		if result.Valid || !containsError(result.Errors, "Move 16 played after the puzzle was already solved") {
			t.Errorf("Expected trailing move error, got %v", result.Errors)
		}
	})

	t.Run("unfinished shows towers", func(t *testing.T) {
		result := replaySolution(4, optimal[:3])
		if result.Valid || !containsError(result.Errors, "Tower A: [4 3]") {
			t.Errorf("Expected tower dump, got %v", result.Errors)
		}
	})
}

func TestSampleSolutions(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("solutions", "*.json"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("No sample solutions found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			if result := validateSolution(file); !result.Valid {
				t.Errorf("Expected %s to be valid, got %v", file, result.Errors)
			}
		})
	}
}
