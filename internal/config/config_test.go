package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost:5432/goaly",
			MaxConns: 25,
			MinConns: 5,
		},
		Goals: GoalsConfig{
			MaxGoalsPerUser:    10000,
			UpcomingWindowDays: 7,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantSub: "server.port",
		},
		{
			name:    "missing DSN",
			mutate:  func(c *Config) { c.Database.DSN = "" },
			wantSub: "database.dsn",
		},
		{
			name:    "min conns above max",
			mutate:  func(c *Config) { c.Database.MinConns = 50 },
			wantSub: "min_conns",
		},
		{
			name:    "zero upcoming window",
			mutate:  func(c *Config) { c.Goals.UpcomingWindowDays = 0 },
			wantSub: "upcoming_window_days",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantSub: "log.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantSub: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("expected error containing %q, got %q", tt.wantSub, err)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	cfg := ServerConfig{Host: "127.0.0.1", Port: 9090}
	if got := cfg.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("expected 127.0.0.1:9090, got %s", got)
	}
}
