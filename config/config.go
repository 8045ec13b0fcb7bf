// Package config provides hierarchical configuration loading for the
// travelmesh server. Precedence: defaults < YAML file < environment
// variables.
package config

import "time"

// Config holds all runtime configuration for the travelmesh server.
type Config struct {
	Server       Server       `yaml:"server"`
	Store        Store        `yaml:"store"`
	NATS         NATS         `yaml:"nats"`
	Model        Model        `yaml:"model"`
	Coordination Coordination `yaml:"coordination"`
	Logging      Logging      `yaml:"logging"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Store selects and configures the conversation store backend.
type Store struct {
	// Backend is "memory" or "postgres".
	Backend       string        `yaml:"backend"`
	DSN           string        `yaml:"dsn"`
	MaxConns      int32         `yaml:"max_conns"`
	MinConns      int32         `yaml:"min_conns"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	MaxIdle       time.Duration `yaml:"max_idle"`
}

// NATS holds the optional event stream configuration. An empty URL
// disables event publishing.
type NATS struct {
	URL string `yaml:"url"`
}

// Model selects the LLM backing the specialist agents.
type Model struct {
	// Provider is "openai", "anthropic" or "mock".
	Provider string `yaml:"provider"`
	Name     string `yaml:"name"`
	APIKey   string `yaml:"api_key"`
}

// Coordination holds routing and fan-out configuration.
type Coordination struct {
	MaxConcurrent int64         `yaml:"max_concurrent"`
	ChatTimeout   time.Duration `yaml:"chat_timeout"`
	PlanTimeout   time.Duration `yaml:"plan_timeout"`
	FallbackAgent string        `yaml:"fallback_agent"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Service string `yaml:"service"`
}

// Defaults returns a Config with sensible default values for local
// development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: Store{
			Backend:       "memory",
			MaxConns:      10,
			MinConns:      1,
			SweepInterval: 5 * time.Minute,
			MaxIdle:       time.Hour,
		},
		Model: Model{
			Provider: "openai",
			Name:     "gpt-4o-mini",
		},
		Coordination: Coordination{
			MaxConcurrent: 3,
			ChatTimeout:   30 * time.Second,
			PlanTimeout:   45 * time.Second,
			FallbackAgent: "activity",
		},
		Logging: Logging{
			Level:   "info",
			Format:  "json",
			Service: "travelmesh",
		},
	}
}
