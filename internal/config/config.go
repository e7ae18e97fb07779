package config

import (
	"fmt"
)

// Config holds all agent configuration
type Config struct {
	// Identity
	AgentID string `mapstructure:"agent_id"`

	// Memory persistence
	MemoryDir string `mapstructure:"memory_dir"`

	// Turn management
	MaxTurns int `mapstructure:"max_turns"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
}

// Default returns a config with sensible defaults.
// The "unknown" agent id is the sentinel used when the environment
// supplies no identity.
func Default() *Config {
	return &Config{
		AgentID:   "unknown",
		MemoryDir: "/tmp/agents",
		MaxTurns:  -1, // unlimited
		LogLevel:  "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.AgentID == "" {
		return fmt.Errorf("agent_id is required")
	}
	if c.MemoryDir == "" {
		return fmt.Errorf("memory_dir is required")
	}
	if c.MaxTurns == 0 || c.MaxTurns < -1 {
		return fmt.Errorf("max_turns must be positive or -1 for unlimited")
	}
	return nil
}
