package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDiskCount = errors.New("invalid disk count")
	ErrInvalidPeg       = errors.New("invalid tower name")
)

// ValidateDiskCount checks that n is a playable disk count. The engine itself
// accepts any n; callers run this before constructing or resetting one.
func ValidateDiskCount(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidDiskCount, MinDisks, MaxDisks, n)
	}
	return nil
}

// ParsePeg normalizes a tower label. Labels are case-insensitive and may
// carry surrounding whitespace.
func ParsePeg(s string) (Peg, error) {
	p := Peg(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PegA, PegB, PegC:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeg, s)
}

// initTowers builds the three pegs with disks n..1 stacked on PegA
func initTowers(n int) map[Peg]*Stack[int] {
	capacity := n
	if capacity < 0 {
		capacity = 0
	}
	towers := make(map[Peg]*Stack[int], len(Pegs))
	for _, p := range Pegs {
		towers[p] = NewStack[int](capacity)
	}
	for disk := n; disk > 0; disk-- {
		towers[PegA].Push(disk)
	}
	return towers
}

func readyMessage(n int) string {
	return fmt.Sprintf("Ready with %d disks.", n)
}
