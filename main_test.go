package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/hanoi/api"
	"github.com/wricardo/mcp-training/hanoi/game/config"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/session"
	"github.com/wricardo/mcp-training/hanoi/transport/mcp"
	"github.com/wricardo/mcp-training/hanoi/transport/websocket"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Tower of Hanoi Server" {
		t.Errorf("Unexpected app name %s", AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	gameService, manager, err := initializeServices(config.Default())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if gameService == nil || manager == nil {
		t.Fatal("Expected game service and session manager")
	}

	result, err := gameService.GetGameState(context.Background(), "default")
	if err != nil {
		t.Fatalf("Default session unavailable: %v", err)
	}
	if result.State.N != engine.DefaultDisks {
		t.Errorf("Expected %d disks, got %d", engine.DefaultDisks, result.State.N)
	}
}

func TestInitializeServices_InvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.DefaultDisks = 42

	if _, _, err := initializeServices(settings); !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestNewCommand(t *testing.T) {
	cmd := newCommand(config.Default())

	if cmd.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, cmd.Version)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands {
		names[sub.Name] = true
	}
	for _, want := range []string{"server", "play", "stdio-mcp", "solution"} {
		if !names[want] {
			t.Errorf("Missing %s command", want)
		}
	}
}

func TestNewCommand_SolutionRejectsBadDiskCount(t *testing.T) {
	cmd := newCommand(config.Default())

	err := cmd.Run(context.Background(), []string{"hanoi", "--disks", "2", "solution"})
	if !errors.Is(err, engine.ErrInvalidDiskCount) {
		t.Errorf("Expected ErrInvalidDiskCount, got %v", err)
	}
}

func TestPrintSolution(t *testing.T) {
	var buf bytes.Buffer
	if err := printSolution(&buf, 3); err != nil {
		t.Fatalf("printSolution failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("Expected 7 moves and a total line, got %d lines", len(lines))
	}
	if lines[0] != "1. A -> C" || lines[6] != "7. A -> C" {
		t.Errorf("Unexpected moves %v", lines)
	}
	if lines[7] != "Total: 7 moves (optimal 7)" {
		t.Errorf("Unexpected total line %q", lines[7])
	}
}

func TestSessionCleanupRoutine_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sessionCleanupRoutine(ctx, session.NewManager(), time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cleanup routine did not stop")
	}
}

func newTestRoot(t *testing.T) *httptest.Server {
	t.Helper()
	gameService, _, err := initializeServices(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	hub := websocket.NewHub()
	go hub.Run()

	// The MCP proxy needs the server's own URL, so bind first
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	handler := newRootHandler(api.NewServer(gameService, hub), mcp.NewClient("http://"+listener.Addr().String()))

	ts := httptest.NewUnstartedServer(handler)
	ts.Listener.Close()
	ts.Listener = listener
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func TestRootHandler_MCPEndpoint(t *testing.T) {
	ts := newTestRoot(t)

	t.Run("rejects GET", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/mcp")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", resp.StatusCode)
		}
	})

	t.Run("lists tools", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
		resp, err := http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		var buf bytes.Buffer
		buf.ReadFrom(resp.Body)
		for _, tool := range []string{"game_state", "move", "solve"} {
			if !strings.Contains(buf.String(), `"`+tool+`"`) {
				t.Errorf("Expected tool %s in response: %s", tool, buf.String())
			}
		}
	})

	t.Run("API mounted at root", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/state")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected 200, got %d", resp.StatusCode)
		}
	})
}

func TestExternalAPIAvailable(t *testing.T) {
	ts := newTestRoot(t)

	if !externalAPIAvailable(ts.URL) {
		t.Error("Expected running API to be detected")
	}
	if externalAPIAvailable("http://127.0.0.1:1") {
		t.Error("Expected closed port to be unavailable")
	}
}

func TestStartInternalServer(t *testing.T) {
	baseURL, httpServer, err := startInternalServer(config.Default())
	if err != nil {
		t.Fatalf("startInternalServer failed: %v", err)
	}
	defer httpServer.Close()

	deadline := time.Now().Add(time.Second)
	for !externalAPIAvailable(baseURL) {
		if time.Now().After(deadline) {
			t.Fatal("Internal server never became healthy")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
