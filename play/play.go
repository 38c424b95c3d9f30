// Package play runs the interactive text-mode game on a reader and writer.
package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

const menu = `
Tower of Hanoi
Please choose an option:
1. Start/Reset Game
2. Make a Move
3. Undo move
4. Redo move
5. Solve Puzzle
6. Exit
`

// Game is one text-mode session
type Game struct {
	in          *bufio.Scanner
	out         io.Writer
	solveDelay  time.Duration
	clearScreen bool

	eng *engine.GameEngine
}

// Option configures a Game
type Option func(*Game)

// WithSolveDelay sets the pause between moves while the puzzle solves itself
func WithSolveDelay(d time.Duration) Option {
	return func(g *Game) {
		g.solveDelay = d
	}
}

// WithClearScreen clears the terminal before the welcome banner
func WithClearScreen(clear bool) Option {
	return func(g *Game) {
		g.clearScreen = clear
	}
}

// New creates a game reading commands from in and writing to out
func New(in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays until the user exits, input ends or ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	if g.clearScreen {
		fmt.Fprint(g.out, "\033c")
	}
	fmt.Fprintln(g.out, "Welcome to the Tower of Hanoi Game!")

	n, ok := g.askDiskCount()
	if !ok {
		return g.exit()
	}

	g.eng = engine.NewEngine(n,
		engine.WithSolveDelay(g.solveDelay),
		engine.WithObserver(g.report),
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(g.out, menu)
		choice, ok := g.prompt("Enter your choice (1-6): ")
		if !ok {
			return g.exit()
		}

		switch choice {
		case "1":
			g.eng.Reset(g.eng.DiskCount())
			fmt.Fprintln(g.out, "Game reset.")
			g.printTowers(g.eng)
		case "2":
			g.move()
		case "3":
			g.eng.UndoMove()
		case "4":
			g.eng.RedoMove()
		case "5":
			g.eng.Solve()
		case "6":
			return g.exit()
		default:
			fmt.Fprintln(g.out, "Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

// Engine returns the game's engine, nil before a disk count is chosen
func (g *Game) Engine() *engine.GameEngine {
	return g.eng
}

func (g *Game) exit() error {
	fmt.Fprintln(g.out, "Exiting the game. Goodbye!")
	if err := g.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// prompt writes msg and reads one trimmed line. ok is false at end of input.
func (g *Game) prompt(msg string) (string, bool) {
	fmt.Fprint(g.out, msg)
	if !g.in.Scan() {
		fmt.Fprintln(g.out)
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}

func (g *Game) askDiskCount() (int, bool) {
	msg := "Enter number of disks (3-10): "
	for {
		line, ok := g.prompt(msg)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(line); err == nil && engine.ValidateDiskCount(n) == nil {
			return n, true
		}
		msg = "Please enter a valid number of disks (3-10): "
	}
}

func (g *Game) move() {
	srcText, ok := g.prompt("Enter source tower (A, B, C): ")
	if !ok {
		return
	}
	destText, ok := g.prompt("Enter destination tower (A, B, C): ")
	if !ok {
		return
	}

	src, srcErr := engine.ParsePeg(srcText)
	dest, destErr := engine.ParsePeg(destText)
	if srcErr != nil || destErr != nil {
		fmt.Fprintln(g.out, "Invalid tower names. Please use A, B, or C.")
		return
	}

	// Rejections are reported through the observer
	g.eng.MoveDisk(src, dest, false)
}

func (g *Game) printTowers(e *engine.GameEngine) {
	fmt.Fprintln(g.out, engine.FormatTowers(e.GetState().Towers))
	fmt.Fprintln(g.out)
}

// report prints engine events as they happen
func (g *Game) report(e *engine.GameEngine, ev engine.Event) {
	switch ev.Type {
	case engine.EventMove:
		fmt.Fprintf(g.out, "Step %d\nMoving disk from %s to %s\n", ev.Step, ev.Move.Src, ev.Move.Dest)
		g.printTowers(e)
	case engine.EventUndo:
		fmt.Fprintf(g.out, "Step %d\nUndoing move: moving disk from %s to %s\n", ev.Step, ev.Move.Dest, ev.Move.Src)
		g.printTowers(e)
	case engine.EventRedo:
		fmt.Fprintf(g.out, "Step %d\nRedoing move: moving disk from %s to %s\n", ev.Step, ev.Move.Src, ev.Move.Dest)
		g.printTowers(e)
	case engine.EventWin:
		n := e.DiskCount()
		fmt.Fprintln(g.out, "You win!")
		fmt.Fprintf(g.out, "Total steps taken: %d\n", ev.Step)
		fmt.Fprintf(g.out, "Optimal steps expected (2^%d - 1): %d\n", n, engine.OptimalMoves(n))
	case engine.EventSolve:
		fmt.Fprintf(g.out, "Solving for %d disks\nStarting arrangement:\n", e.DiskCount())
		g.printTowers(e)
	case engine.EventInvalid, engine.EventNoop:
		fmt.Fprintln(g.out, ev.Message)
	}
}
