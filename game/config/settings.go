package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds runtime configuration read from the environment
type Settings struct {
	Host            string        `env:"HANOI_HOST"             envDefault:"localhost"`
	Port            int           `env:"HANOI_PORT"             envDefault:"8080"`
	DefaultDisks    int           `env:"HANOI_DEFAULT_DISKS"    envDefault:"3"`
	SolveDelay      time.Duration `env:"HANOI_SOLVE_DELAY"      envDefault:"500ms"`
	SessionTTL      time.Duration `env:"HANOI_SESSION_TTL"      envDefault:"24h"`
	CleanupInterval time.Duration `env:"HANOI_CLEANUP_INTERVAL" envDefault:"1h"`

	Ngrok NgrokSettings
}

// NgrokSettings controls the optional public tunnel
type NgrokSettings struct {
	Enabled   bool   `env:"NGROK_ENABLED"`
	AuthToken string `env:"NGROK_AUTHTOKEN"`
	Domain    string `env:"NGROK_DOMAIN"`
}

// Load parses Settings from the environment and validates them
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Also support the underscore spelling
	if s.Ngrok.AuthToken == "" {
		s.Ngrok.AuthToken = os.Getenv("NGROK_AUTH_TOKEN")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the settings used when the environment is empty
func Default() *Settings {
	return &Settings{
		Host:            "localhost",
		Port:            8080,
		DefaultDisks:    engine.DefaultDisks,
		SolveDelay:      500 * time.Millisecond,
		SessionTTL:      24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// Validate checks value ranges
func (s *Settings) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidSettings, s.Port)
	}
	if err := engine.ValidateDiskCount(s.DefaultDisks); err != nil {
		return fmt.Errorf("%w: default disks: %v", ErrInvalidSettings, err)
	}
	if s.SolveDelay < 0 {
		return fmt.Errorf("%w: solve delay must not be negative", ErrInvalidSettings)
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidSettings)
	}
	if s.CleanupInterval <= 0 {
		return fmt.Errorf("%w: cleanup interval must be positive", ErrInvalidSettings)
	}
	return nil
}

// Addr returns host:port for the HTTP listener
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BaseURL returns the local URL clients use to reach the API
func (s *Settings) BaseURL() string {
	return "http://" + s.Addr()
}
