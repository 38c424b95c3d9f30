package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
	"github.com/wricardo/mcp-training/hanoi/game/session"
	"github.com/wricardo/mcp-training/hanoi/transport/websocket"
	"github.com/wricardo/mcp-training/hanoi/web"
)

// Server represents the REST API server
type Server struct {
	service      service.GameService
	hub          *websocket.Hub
	router       *mux.Router
	defaultDisks int
}

// Option configures a Server
type Option func(*Server)

// WithDefaultDisks sets the disk count used when a reset or create request
// omits n.
func WithDefaultDisks(n int) Option {
	return func(s *Server) {
		if engine.ValidateDiskCount(n) == nil {
			s.defaultDisks = n
		}
	}
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub, opts ...Option) *Server {
	s := &Server{
		service:      gameService,
		hub:          hub,
		router:       mux.NewRouter(),
		defaultDisks: engine.DefaultDisks,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Single-game routes operate on the default session
	s.router.HandleFunc("/state", s.handleGetGameState).Methods("GET")
	s.router.HandleFunc("/reset", s.handleReset).Methods("POST")
	s.router.HandleFunc("/move", s.handleMove).Methods("POST")
	s.router.HandleFunc("/undo", s.handleUndo).Methods("POST")
	s.router.HandleFunc("/redo", s.handleRedo).Methods("POST")
	s.router.HandleFunc("/solve", s.handleSolve).Methods("POST")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Game operations
	api.HandleFunc("/sessions/{id}/state", s.handleGetGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/reset", s.handleReset).Methods("POST")
	api.HandleFunc("/sessions/{id}/move", s.handleMove).Methods("POST")
	api.HandleFunc("/sessions/{id}/undo", s.handleUndo).Methods("POST")
	api.HandleFunc("/sessions/{id}/redo", s.handleRedo).Methods("POST")
	api.HandleFunc("/sessions/{id}/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/sessions/{id}/history", s.handleGetHistory).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Browser client
	s.router.PathPrefix("/").Handler(http.FileServer(web.StaticFS()))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error onto an HTTP status
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInvalidDiskCount):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrSessionAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// sessionID returns the routed session, or the default session for the
// single-game routes.
func sessionID(r *http.Request) string {
	if id := mux.Vars(r)["id"]; id != "" {
		return id
	}
	return service.DefaultSessionID
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type diskCountRequest struct {
	N *int `json:"n"`
}

func (s *Server) diskCount(req diskCountRequest) int {
	if req.N == nil {
		return s.defaultDisks
	}
	return *req.N
}

func (s *Server) broadcast(id string, result *service.Result) {
	if s.hub != nil && result != nil && result.State != nil {
		s.hub.BroadcastToSession(id, result.State)
	}
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req diskCountRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := s.service.CreateSession(r.Context(), s.diskCount(req))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("[SESSION] created id=%s n=%d", info.ID, info.GameState.N)
	respondJSON(w, http.StatusCreated, info)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of sessions to return

	if sortBy != "created" {
		sortBy = "accessed"
	}
	if order != "asc" {
		order = "desc"
	}

	sort.Slice(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = sessions[i].CreatedAt, sessions[j].CreatedAt
		} else {
			ti, tj = sessions[i].LastAccessedAt, sessions[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	total := len(sessions)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < total {
			sessions = sessions[:l]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(sessions),
		"total":    total,
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	info, err := s.service.GetSession(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	if err := s.service.DeleteSession(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", id),
	})
}

// Game Operation Handlers

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.GetGameState(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req diskCountRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n := s.diskCount(req)
	result, err := s.service.Reset(r.Context(), id, n)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(id, result)
	log.Printf("[RESET] session=%s n=%d ok=%t", id, n, result.OK)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req struct {
		Src  string `json:"src"`
		Dest string `json:"dest"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Move(r.Context(), id, req.Src, req.Dest)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(id, result)

	// Compact server log for observability
	status := "FAIL"
	if result.OK {
		status = "OK"
	}
	step := -1
	if result.State != nil {
		step = result.State.Step
	}
	log.Printf("[MOVE] session=%s %s->%s step=%d status=%s", id, req.Src, req.Dest, step, status)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	result, err := s.service.Undo(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(id, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	result, err := s.service.Redo(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(id, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	result, err := s.service.Solve(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if s.hub != nil {
		s.hub.BroadcastSolve(id, result.State, result.Moves)
	}
	log.Printf("[SOLVE] session=%s n=%d moves=%d", id, result.State.N, len(result.Moves))

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	opts := service.HistoryOptions{
		Page:  1,
		Limit: 20,
		Order: "desc",
	}

	query := r.URL.Query()
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			opts.Page = p
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			opts.Limit = l
		}
	}

	if order := query.Get("order"); order == "asc" || order == "desc" {
		opts.Order = order
	}

	history, err := s.service.GetMoveHistory(r.Context(), sessionID(r), opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	// Verify session exists
	info, err := s.service.GetSession(r.Context(), id)
	if err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, info.ID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
