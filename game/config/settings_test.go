package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

var settingsKeys = []string{
	"HANOI_HOST", "HANOI_PORT", "HANOI_DEFAULT_DISKS", "HANOI_SOLVE_DELAY",
	"HANOI_SESSION_TTL", "HANOI_CLEANUP_INTERVAL",
	"NGROK_ENABLED", "NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN", "NGROK_DOMAIN",
}

// clearEnv unsets every settings variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range settingsKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	if s.Host != want.Host || s.Port != want.Port {
		t.Errorf("Expected %s, got %s", want.Addr(), s.Addr())
	}
	if s.DefaultDisks != 3 {
		t.Errorf("Expected default disks 3, got %d", s.DefaultDisks)
	}
	if s.SolveDelay != 500*time.Millisecond {
		t.Errorf("Expected solve delay 500ms, got %v", s.SolveDelay)
	}
	if s.SessionTTL != 24*time.Hour || s.CleanupInterval != time.Hour {
		t.Errorf("Unexpected session timings: ttl=%v interval=%v", s.SessionTTL, s.CleanupInterval)
	}
	if s.Ngrok.Enabled {
		t.Error("Expected ngrok disabled by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HANOI_HOST", "0.0.0.0")
	t.Setenv("HANOI_PORT", "9090")
	t.Setenv("HANOI_DEFAULT_DISKS", "5")
	t.Setenv("HANOI_SOLVE_DELAY", "0s")
	t.Setenv("HANOI_SESSION_TTL", "30m")
	t.Setenv("HANOI_CLEANUP_INTERVAL", "5m")
	t.Setenv("NGROK_ENABLED", "true")
	t.Setenv("NGROK_AUTH_TOKEN", "secret")
	t.Setenv("NGROK_DOMAIN", "hanoi.example.com")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Addr() != "0.0.0.0:9090" {
		t.Errorf("Expected 0.0.0.0:9090, got %s", s.Addr())
	}
	if s.BaseURL() != "http://0.0.0.0:9090" {
		t.Errorf("Unexpected base URL %s", s.BaseURL())
	}
	if s.DefaultDisks != 5 {
		t.Errorf("Expected 5 disks, got %d", s.DefaultDisks)
	}
	if s.SolveDelay != 0 {
		t.Errorf("Expected no solve delay, got %v", s.SolveDelay)
	}
	if s.SessionTTL != 30*time.Minute || s.CleanupInterval != 5*time.Minute {
		t.Errorf("Unexpected session timings: ttl=%v interval=%v", s.SessionTTL, s.CleanupInterval)
	}
	if !s.Ngrok.Enabled || s.Ngrok.AuthToken != "secret" || s.Ngrok.Domain != "hanoi.example.com" {
		t.Errorf("Unexpected ngrok settings: %+v", s.Ngrok)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"too few disks", "HANOI_DEFAULT_DISKS", "2"},
		{"too many disks", "HANOI_DEFAULT_DISKS", "11"},
		{"port out of range", "HANOI_PORT", "70000"},
		{"zero ttl", "HANOI_SESSION_TTL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoad_Unparseable(t *testing.T) {
	clearEnv(t)
	t.Setenv("HANOI_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Expected parse error")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default settings should be valid: %v", err)
	}
}
