// Command autoplay solves a Tower of Hanoi session through the REST API,
// either by replaying the server's solution or by deciding each move from
// the returned state.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

const sessionFile = ".session"

var errNoMove = errors.New("strategy has no move")

func main() {
	cmd := &cli.Command{
		Name:  "autoplay",
		Usage: "Solve a game on a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Game server URL"},
			&cli.IntFlag{Name: "disks", Value: engine.DefaultDisks, Usage: "Disk count (3-10)"},
			&cli.StringFlag{Name: "continue", Usage: "Resume playing an existing session by ID"},
			&cli.StringFlag{Name: "strategy", Value: "iterative", Usage: "iterative or server"},
			&cli.IntFlag{Name: "max-moves", Value: 2000, Usage: "Give up after this many moves"},
			&cli.DurationFlag{Name: "delay", Usage: "Delay between moves"},
			&cli.BoolFlag{Name: "v", Usage: "Verbose output"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("disks"))
	if err := engine.ValidateDiskCount(n); err != nil {
		return err
	}

	log.Printf("Connecting to game server at %s", cmd.String("url"))
	client := NewClient(cmd.String("url"))

	if err := openSession(client, cmd.String("continue"), n); err != nil {
		return err
	}

	opts := playOptions{
		strategy: cmd.String("strategy"),
		maxMoves: int(cmd.Int("max-moves")),
		delay:    cmd.Duration("delay"),
		verbose:  cmd.Bool("v"),
	}
	state, moves, err := play(ctx, client, n, opts)
	if err != nil {
		return err
	}

	log.Printf("Solved session %s with %d moves (optimal %d)", client.sessionID, moves, state.Optimal)
	return nil
}

// openSession resumes the requested or saved session, falling back to a new one
func openSession(client *Client, resume string, n int) error {
	saved := resume
	if saved == "" {
		if data, err := os.ReadFile(sessionFile); err == nil {
			saved = string(bytes.TrimSpace(data))
		}
	}

	if saved != "" {
		client.sessionID = saved
		log.Printf("Resuming session: %s", saved)
		_, err := client.GetState()
		if err == nil {
			return nil
		}
		log.Printf("Warning: Failed to resume session (may be expired): %v", err)
	}

	if _, err := client.CreateSession(n); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	log.Printf("Session created: %s", client.sessionID)

	if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
		log.Printf("Warning: Failed to save session ID: %v", err)
	}
	return nil
}

type playOptions struct {
	strategy string
	maxMoves int
	delay    time.Duration
	verbose  bool
}

// play resets the session to n disks and drives it to the goal
func play(ctx context.Context, client *Client, n int, opts playOptions) (*engine.GameState, int, error) {
	state, err := client.Reset(n)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reset game: %w", err)
	}

	var strategy Strategy
	switch opts.strategy {
	case "server":
		var moves []engine.Move
		state, moves, err = client.Solve()
		if err != nil {
			return nil, 0, err
		}
		strategy = NewReplayStrategy(moves)
	case "iterative", "":
		strategy = IterativeStrategy{}
	default:
		return nil, 0, fmt.Errorf("unknown strategy %q", opts.strategy)
	}

	moveCount := 0
	for !state.Won {
		if err := ctx.Err(); err != nil {
			return state, moveCount, err
		}
		if moveCount >= opts.maxMoves {
			return state, moveCount, fmt.Errorf("gave up after %d moves", moveCount)
		}

		m, ok := strategy.NextMove(state)
		if !ok {
			return state, moveCount, errNoMove
		}

		state, err = client.Move(m)
		if err != nil {
			return state, moveCount, err
		}
		moveCount++

		if opts.verbose {
			log.Printf("Step %d: %s -> %s", state.Step, m.Src, m.Dest)
		}
		if opts.delay > 0 {
			time.Sleep(opts.delay)
		}
	}

	return state, moveCount, nil
}
