// Command validate checks Tower of Hanoi solution files. Each file is a JSON
// object naming a disk count and a move list. It checks:
//   - JSON structure and required fields
//   - Disk count within the playable range
//   - Tower labels (A, B, C, case-insensitive)
//   - Every move is legal when replayed from the starting arrangement
//   - The replay ends with all disks on tower C
//
// Files are taken from the command line, or from solutions/*.json when none
// are given.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// Solution mirrors the JSON schema for a solution file.
type Solution struct {
	Name  string         `json:"name"`
	N     int            `json:"n"`
	Moves []SolutionMove `json:"moves"`
}

// SolutionMove keeps tower labels as raw strings so bad labels can be
// reported instead of failing the decode.
type SolutionMove struct {
	Src  string `json:"src"`
	Dest string `json:"dest"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateSolution loads a solution file and replays it on a fresh engine.
func validateSolution(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var solution Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateDiskCount(solution.N); err != nil {
		result.fail("%v", err)
	}
	if len(solution.Moves) == 0 {
		result.fail("Solution has no moves")
	}

	moves := make([]engine.Move, 0, len(solution.Moves))
	for i, m := range solution.Moves {
		src, srcErr := engine.ParsePeg(m.Src)
		dest, destErr := engine.ParsePeg(m.Dest)
		if srcErr != nil || destErr != nil {
			result.fail("Invalid tower name in move %d: %q -> %q", i+1, m.Src, m.Dest)
			continue
		}
		moves = append(moves, engine.Move{Src: src, Dest: dest})
	}

	if result.Valid {
		replay := replaySolution(solution.N, moves)
		result.Valid = replay.Valid
		result.Errors = append(result.Errors, replay.Errors...)
	}

	if result.Valid {
		name := solution.Name
		if name == "" {
			name = "(unnamed)"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Disks: %d", solution.N))
	}

	return result
}

// replaySolution applies moves in order and stops at the first illegal one.
// A legal replay that does not finish on the goal tower is invalid.
func replaySolution(n int, moves []engine.Move) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	eng := engine.NewEngine(n)
	for i, m := range moves {
		if eng.IsWon() {
			result.fail("Move %d played after the puzzle was already solved", i+1)
			return result
		}
		if err := eng.MoveDisk(m.Src, m.Dest, false); err != nil {
			result.fail("Illegal move %d (%s -> %s): %v", i+1, m.Src, m.Dest, err)
			return result
		}
	}

	if !eng.IsWon() {
		result.fail("Puzzle not solved after %d moves", len(moves))
		result.Errors = append(result.Errors, engine.FormatTowers(eng.GetState().Towers))
		return result
	}

	optimal := engine.OptimalMoves(n)
	if eng.Step() == optimal {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Solved in %d moves (optimal)", eng.Step()))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Solved in %d moves (%d over optimal %d)", eng.Step(), eng.Step()-optimal, optimal))
	}
	return result
}

// main validates each file given on the command line, or every
// solutions/*.json file, printing a concise report and exiting with
// non-zero status if any are invalid.
func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		var err error
		files, err = filepath.Glob(filepath.Join("solutions", "*.json"))
		if err != nil {
			fmt.Printf("Error finding solution files: %v\n", err)
			os.Exit(1)
		}
	}

	if len(files) == 0 {
		fmt.Println("No solution files found")
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateSolution(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All solutions are valid!")
	} else {
		fmt.Println("❌ Some solutions have errors")
		os.Exit(1)
	}
}
