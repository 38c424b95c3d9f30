package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API at baseURL
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tower of Hanoi",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tower of Hanoi - MCP Interface

This is a thin client that proxies all requests to the REST API server.

OBJECTIVE:
Move every disk from tower A to tower C. Only the top disk of a tower can
move and a disk may never rest on a smaller one.

AVAILABLE TOOLS:
- create_session: Start a new game with 3-10 disks
- list_sessions: List active games
- game_state: Towers, step count and undo/redo availability
- move: Move the top disk from src to dest
- undo / redo: Step back and forward through applied moves
- reset_game: Start over, optionally with a new disk count
- solve: Get the optimal move list (optionally play it)
- move_history: Applied moves, paginated
- game_instructions: Full rules

Omit session_id to play the shared default game.`),
	)

	c.registerTools()
}

func sessionParam() mcp.ToolOption {
	return mcp.WithString("session_id",
		mcp.Description("Session ID (defaults to the shared default session)"),
	)
}

func pegParam(name, desc string) mcp.ToolOption {
	return mcp.WithString(name,
		mcp.Required(),
		mcp.Description(desc),
		mcp.Enum("A", "B", "C"),
	)
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.NewTool("create_session",
		mcp.WithDescription("Create a new game session"),
		mcp.WithNumber("n",
			mcp.Description("Number of disks, 3 to 10 (default 3)"),
			mcp.Min(engine.MinDisks),
			mcp.Max(engine.MaxDisks),
		),
	), c.handleCreateSession)

	c.mcpServer.AddTool(mcp.NewTool("list_sessions",
		mcp.WithDescription("List all active game sessions"),
	), c.handleListSessions)

	// Game operations
	c.mcpServer.AddTool(mcp.NewTool("game_state",
		mcp.WithDescription("Get the current towers and progress"),
		sessionParam(),
	), c.handleGameState)

	c.mcpServer.AddTool(mcp.NewTool("move",
		mcp.WithDescription("Move the top disk of one tower onto another"),
		sessionParam(),
		pegParam("src", "Tower to take the top disk from"),
		pegParam("dest", "Tower to place the disk on"),
	), c.handleMove)

	c.mcpServer.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Revert the most recent move"),
		sessionParam(),
	), c.handleUndo)

	c.mcpServer.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Reapply the most recently undone move"),
		sessionParam(),
	), c.handleRedo)

	c.mcpServer.AddTool(mcp.NewTool("reset_game",
		mcp.WithDescription("Reset the game to its starting arrangement"),
		sessionParam(),
		mcp.WithNumber("n",
			mcp.Description("Number of disks, 3 to 10 (keeps the current count when omitted)"),
			mcp.Min(engine.MinDisks),
			mcp.Max(engine.MaxDisks),
		),
	), c.handleReset)

	c.mcpServer.AddTool(mcp.NewTool("solve",
		mcp.WithDescription("Reset the game and return the optimal move sequence"),
		sessionParam(),
		mcp.WithBoolean("apply",
			mcp.Description("Play the moves after solving (default false)"),
		),
	), c.handleSolve)

	c.mcpServer.AddTool(mcp.NewTool("move_history",
		mcp.WithDescription("Get applied moves with pagination"),
		sessionParam(),
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("limit", mcp.Description("Moves per page (default 20, max 100)")),
		mcp.WithString("order",
			mcp.Description("Sort order (default desc)"),
			mcp.Enum("asc", "desc"),
		),
	), c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.NewTool("game_instructions",
		mcp.WithDescription("Get the rules and a strategy overview"),
	), c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func sessionPath(request mcp.CallToolRequest, suffix string) string {
	id := request.GetString("session_id", "")
	if id == "" {
		id = service.DefaultSessionID
	}
	return "/api/sessions/" + url.PathEscape(id) + suffix
}

// maxPage bounds the history page argument
const maxPage = math.MaxInt32

// intArg reads an optional integer argument within [lo, hi]. JSON numbers
// arrive as float64; fractions and out-of-range values are rejected.
func intArg(request mcp.CallToolRequest, key string, lo, hi int) (int, bool, error) {
	raw, present := request.GetArguments()[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	v, ok := raw.(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false, fmt.Errorf("%s must be an integer", key)
	}
	if v < float64(lo) || v > float64(hi) {
		return 0, false, fmt.Errorf("%s must be between %d and %d", key, lo, hi)
	}
	return int(v), true, nil
}

// envelope posts to a game operation and renders the resulting envelope
func (c *Client) envelope(ctx context.Context, path string, body interface{}) (*mcp.CallToolResult, error) {
	var result service.Result
	if err := c.apiCall(ctx, "POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatResult(&result)), nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := map[string]int{}
	n, ok, err := intArg(request, "n", engine.MinDisks, engine.MaxDisks)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		body["n"] = n
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Created " + formatSessionInfo(&session)), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		line := fmt.Sprintf("- %s (Created: %s", s.ID, s.CreatedAt.Format("15:04:05"))
		if s.GameState != nil {
			line += fmt.Sprintf(", Disks: %d, Step: %d", s.GameState.N, s.GameState.Step)
			if s.GameState.Won {
				line += ", Solved"
			}
		}
		b.WriteString(line + ")\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var result service.Result
	if err := c.apiCall(ctx, "GET", sessionPath(request, "/state"), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(result.State)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := map[string]string{
		"src":  request.GetString("src", ""),
		"dest": request.GetString("dest", ""),
	}
	return c.envelope(ctx, sessionPath(request, "/move"), body)
}

func (c *Client) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.envelope(ctx, sessionPath(request, "/undo"), nil)
}

func (c *Client) handleRedo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.envelope(ctx, sessionPath(request, "/redo"), nil)
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, ok, err := intArg(request, "n", engine.MinDisks, engine.MaxDisks)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		// Keep the current disk count
		var current service.Result
		if err := c.apiCall(ctx, "GET", sessionPath(request, "/state"), nil, &current); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n = engine.DefaultDisks
		if current.State != nil {
			n = current.State.N
		}
	}

	return c.envelope(ctx, sessionPath(request, "/reset"), map[string]int{"n": n})
}

func (c *Client) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var solved service.Result
	if err := c.apiCall(ctx, "POST", sessionPath(request, "/solve"), nil, &solved); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	apply, _ := request.GetArguments()["apply"].(bool)
	if !apply {
		return mcp.NewToolResultText(formatSolution(solved.Moves) + "\n\n" + formatGameState(solved.State)), nil
	}

	last := &solved
	for i, m := range solved.Moves {
		var step service.Result
		if err := c.apiCall(ctx, "POST", sessionPath(request, "/move"), m, &step); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("move %d (%s->%s): %v", i+1, m.Src, m.Dest, err)), nil
		}
		if !step.OK {
			return mcp.NewToolResultError(fmt.Sprintf("move %d (%s->%s) rejected: %s", i+1, m.Src, m.Dest, step.Message)), nil
		}
		last = &step
	}

	result := fmt.Sprintf("Applied %d moves.\n\n%s", len(solved.Moves), formatGameState(last.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := url.Values{}
	page, ok, err := intArg(request, "page", 1, maxPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		params.Set("page", fmt.Sprint(page))
	}
	limit, ok, err := intArg(request, "limit", 1, 100)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		params.Set("limit", fmt.Sprint(limit))
	}
	if order := request.GetString("order", ""); order != "" {
		params.Set("order", order)
	}

	path := sessionPath(request, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `Tower of Hanoi - Complete Instructions

OBJECTIVE:
Move the whole stack of disks from tower A to tower C.

RULES:
• Only the top disk of a tower can be moved
• A disk can never be placed on a smaller disk
• Moving a disk onto the tower it came from is allowed and counts as a step

DISK NUMBERS:
Disks are numbered by size, 1 being the smallest. Towers are listed bottom
to top, so "Tower A: [3 2 1]" has disk 1 on top.

SCORING:
The minimum number of moves for n disks is 2^n - 1 (7 for 3 disks, 1023 for
10). game_state shows the step count next to this optimum.

STRATEGY:
To move n disks from A to C, move the top n-1 disks to B, move the largest
disk to C, then move the n-1 disks from B onto it. The solve tool returns
exactly this sequence.

TOOLS:
• move {src, dest}: apply one move; illegal moves are rejected without side effects
• undo / redo: walk back and forth through applied moves; a new move after
  an undo discards the redo history
• reset_game {n}: restart with 3-10 disks
• solve {apply}: reset and get the optimal sequence, optionally playing it
• move_history: applied moves, newest first by default`
