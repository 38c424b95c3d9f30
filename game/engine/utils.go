package engine

import "fmt"

// OptimalMoves returns 2^n - 1, the minimum number of moves for n disks
func OptimalMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}

// CountDisks counts the disks across all towers in a snapshot
func CountDisks(towers map[Peg][]int) int {
	count := 0
	for _, disks := range towers {
		count += len(disks)
	}
	return count
}

// ValidateTowers checks the structural invariants of a snapshot: every peg is
// strictly decreasing bottom to top and the pegs together hold exactly 1..n.
func ValidateTowers(n int, towers map[Peg][]int) error {
	seen := make(map[int]bool, n)
	for _, p := range Pegs {
		disks := towers[p]
		for i, d := range disks {
			if d < 1 || d > n {
				return fmt.Errorf("tower %s: disk %d out of range 1..%d", p, d, n)
			}
			if seen[d] {
				return fmt.Errorf("tower %s: duplicate disk %d", p, d)
			}
			seen[d] = true
			if i > 0 && disks[i-1] <= d {
				return fmt.Errorf("tower %s: disk %d rests on smaller disk %d", p, d, disks[i-1])
			}
		}
	}
	if len(seen) != n {
		return fmt.Errorf("expected %d disks, found %d", n, len(seen))
	}
	return nil
}

// FormatTowers renders towers one per line, e.g. "Tower A: [3 2 1]"
func FormatTowers(towers map[Peg][]int) string {
	out := ""
	for i, p := range Pegs {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("Tower %s: %v", p, towers[p])
	}
	return out
}
