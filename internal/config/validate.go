package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Goals.UpcomingWindowDays < 1 {
		return fmt.Errorf("goals.upcoming_window_days must be >= 1 (got %d)", c.Goals.UpcomingWindowDays)
	}
	if c.Goals.MaxGoalsPerUser < 1 {
		return fmt.Errorf("goals.max_goals_per_user must be >= 1 (got %d)", c.Goals.MaxGoalsPerUser)
	}

	level := strings.ToLower(c.Log.Level)
	if _, ok := validLogLevels[level]; !ok {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
