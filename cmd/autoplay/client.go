package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
)

// Client talks to one session of the REST API
type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateSession starts a new game with n disks and targets it
func (c *Client) CreateSession(n int) (*engine.GameState, error) {
	reqBody, err := json.Marshal(map[string]int{"n": n})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var session service.SessionInfo
	if err := c.do("POST", "/api/sessions", reqBody, &session, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState() (*engine.GameState, error) {
	var result service.Result
	if err := c.do("GET", c.sessionPath("/state"), nil, &result, http.StatusOK); err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	return result.State, nil
}

func (c *Client) Reset(n int) (*engine.GameState, error) {
	reqBody, err := json.Marshal(map[string]int{"n": n})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	result, err := c.envelope(c.sessionPath("/reset"), reqBody)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return result.State, nil
}

// Move applies one move. A rejected move returns the unchanged state and an
// error carrying the server's message.
func (c *Client) Move(m engine.Move) (*engine.GameState, error) {
	reqBody, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	result, err := c.envelope(c.sessionPath("/move"), reqBody)
	if err != nil {
		return nil, fmt.Errorf("execute move: %w", err)
	}
	return result.State, nil
}

// Solve resets the session and returns the server's optimal move list
func (c *Client) Solve() (*engine.GameState, []engine.Move, error) {
	result, err := c.envelope(c.sessionPath("/solve"), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("solve: %w", err)
	}
	return result.State, result.Moves, nil
}

func (c *Client) sessionPath(suffix string) string {
	return fmt.Sprintf("/api/sessions/%s%s", c.sessionID, suffix)
}

func (c *Client) envelope(path string, body []byte) (*service.Result, error) {
	var result service.Result
	if err := c.do("POST", path, body, &result, http.StatusOK); err != nil {
		return nil, err
	}
	if !result.OK {
		return &result, fmt.Errorf("rejected: %s", result.Message)
	}
	return &result, nil
}

func (c *Client) do(method, path string, body []byte, v interface{}, want int) error {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%s - %s", resp.Status, errResp["error"])
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
