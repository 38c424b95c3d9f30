// Command hanoi serves the Tower of Hanoi puzzle.
//
// It supports several modes:
//  1. "server" (default) – runs the HTTP server exposing the REST API, WebSocket, the browser client and an /mcp HTTP endpoint
//  2. "play" – runs the interactive text-mode game in the terminal
//  3. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//  4. "solution" – prints the optimal move sequence for a disk count
//
// Settings come from the environment (and an optional .env file); flags
// override them. Optional ngrok tunneling gives the server a public URL.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/hanoi/game/config"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
	"github.com/wricardo/mcp-training/hanoi/game/session"
	"github.com/wricardo/mcp-training/hanoi/play"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Tower of Hanoi Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(settings).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the CLI with flag defaults taken from settings
func newCommand(settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:    "hanoi",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: settings.Host, Usage: "HTTP server host"},
			&cli.IntFlag{Name: "port", Value: settings.Port, Usage: "HTTP server port"},
			&cli.IntFlag{Name: "disks", Value: settings.DefaultDisks, Usage: "Disk count for new games (3-10)"},
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			&cli.BoolFlag{Name: "ngrok", Value: settings.Ngrok.Enabled, Usage: "Enable ngrok tunnel"},
			&cli.StringFlag{Name: "ngrok-auth", Value: settings.Ngrok.AuthToken, Usage: "Ngrok auth token (or NGROK_AUTHTOKEN)"},
			&cli.StringFlag{Name: "ngrok-domain", Value: settings.Ngrok.Domain, Usage: "Custom ngrok domain (optional)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runHTTPServer(ctx, applyFlags(cmd, settings))
		},
		Commands: []*cli.Command{
			{
				Name:    "server",
				Aliases: []string{"http"},
				Usage:   "Run HTTP server with API, WebSocket, and MCP endpoint (default)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runHTTPServer(ctx, applyFlags(cmd, settings))
				},
			},
			{
				Name:  "play",
				Usage: "Play in the terminal",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "solve-delay", Value: settings.SolveDelay, Usage: "Pause between moves while solving"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyFlags(cmd, settings)
					game := play.New(os.Stdin, os.Stdout,
						play.WithSolveDelay(cmd.Duration("solve-delay")),
						play.WithClearScreen(isatty.IsTerminal(os.Stdout.Fd())),
					)
					return game.Run(ctx)
				},
			},
			{
				Name:    "stdio-mcp",
				Aliases: []string{"mcp-stdio", "mcp"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCPWithInternalServer(ctx, applyFlags(cmd, settings))
				},
			},
			{
				Name:  "solution",
				Usage: "Print the optimal move sequence for --disks",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return printSolution(os.Stdout, applyFlags(cmd, settings).DefaultDisks)
				},
			},
		},
	}
}

// applyFlags copies flag values over settings and configures logging
func applyFlags(cmd *cli.Command, base *config.Settings) *config.Settings {
	s := *base
	s.Host = cmd.String("host")
	s.Port = int(cmd.Int("port"))
	s.DefaultDisks = int(cmd.Int("disks"))
	s.Ngrok.Enabled = cmd.Bool("ngrok")
	s.Ngrok.AuthToken = cmd.String("ngrok-auth")
	s.Ngrok.Domain = cmd.String("ngrok-domain")

	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	return &s
}

// initializeServices wires the session manager and the game service
func initializeServices(settings *config.Settings) (service.GameService, *session.Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, settings.DefaultDisks)

	return gameService, sessionManager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within ttl. It returns when ctx is done.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(ttl); removed > 0 {
				log.Printf("Cleaned up %d expired sessions", removed)
			}
		}
	}
}

// printSolution writes the optimal moves for n disks, one per line
func printSolution(w io.Writer, n int) error {
	if err := engine.ValidateDiskCount(n); err != nil {
		return err
	}

	moves := engine.EnumerateSolution(n, engine.PegA, engine.GoalPeg, engine.PegB)
	for i, m := range moves {
		if _, err := fmt.Fprintf(w, "%d. %s -> %s\n", i+1, m.Src, m.Dest); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d moves (optimal %d)\n", len(moves), engine.OptimalMoves(n))
	return err
}
