// Command analyze prints quick, human-readable statistics about optimal
// Tower of Hanoi solutions: how often each disk moves, how traffic is spread
// across the pegs, and whether replaying the solution on a fresh engine
// actually reaches the goal.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// Analysis summarizes the optimal solution for one disk count.
type Analysis struct {
	N         int
	Moves     int
	Optimal   int
	DiskMoves map[int]int
	PegOut    map[engine.Peg]int
	PegIn     map[engine.Peg]int
	First     engine.Move
	Last      engine.Move
	Verified  bool
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Print statistics about optimal solutions",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "min", Value: engine.MinDisks, Usage: "Smallest disk count"},
			&cli.IntFlag{Name: "max", Value: engine.MaxDisks, Usage: "Largest disk count"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(os.Stdout, int(cmd.Int("min")), int(cmd.Int("max")))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, lo, hi int) error {
	if err := engine.ValidateDiskCount(lo); err != nil {
		return err
	}
	if err := engine.ValidateDiskCount(hi); err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("min %d is greater than max %d", lo, hi)
	}

	for n := lo; n <= hi; n++ {
		fmt.Fprintf(w, "\n=== Analyzing %d disks ===\n", n)
		report(w, analyze(n))
	}
	return nil
}

// analyze enumerates the optimal solution for n disks and replays it on an
// engine, counting which disk each move carries.
func analyze(n int) *Analysis {
	moves := engine.EnumerateSolution(n, engine.PegA, engine.GoalPeg, engine.PegB)
	a := &Analysis{
		N:         n,
		Moves:     len(moves),
		Optimal:   engine.OptimalMoves(n),
		DiskMoves: make(map[int]int),
		PegOut:    make(map[engine.Peg]int),
		PegIn:     make(map[engine.Peg]int),
		Verified:  true,
	}
	if len(moves) > 0 {
		a.First = moves[0]
		a.Last = moves[len(moves)-1]
	}

	eng := engine.NewEngine(n)
	for _, m := range moves {
		tower := eng.Tower(m.Src)
		if len(tower) == 0 {
			a.Verified = false
			break
		}
		disk := tower[len(tower)-1]

		if err := eng.MoveDisk(m.Src, m.Dest, false); err != nil {
			a.Verified = false
			break
		}
		a.DiskMoves[disk]++
		a.PegOut[m.Src]++
		a.PegIn[m.Dest]++
	}

	a.Verified = a.Verified && eng.IsWon() && eng.Step() == a.Optimal
	return a
}

func report(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Moves: %d (optimal 2^%d - 1 = %d)\n", a.Moves, a.N, a.Optimal)
	fmt.Fprintf(w, "First move: %s -> %s\n", a.First.Src, a.First.Dest)
	fmt.Fprintf(w, "Last move: %s -> %s\n", a.Last.Src, a.Last.Dest)

	fmt.Fprintln(w, "Moves per disk:")
	for d := 1; d <= a.N; d++ {
		fmt.Fprintf(w, "   Disk %d: %d\n", d, a.DiskMoves[d])
	}

	fmt.Fprintln(w, "Peg traffic (out/in):")
	for _, p := range engine.Pegs {
		fmt.Fprintf(w, "   Tower %s: %d/%d\n", p, a.PegOut[p], a.PegIn[p])
	}

	if a.Verified {
		fmt.Fprintf(w, "✅ Replay reaches tower %s in %d moves\n", engine.GoalPeg, a.Optimal)
	} else {
		fmt.Fprintf(w, "⚠️  WARNING: replay did not reach the goal optimally\n")
	}
}
