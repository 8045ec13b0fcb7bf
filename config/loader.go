package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "travelmesh.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional; a missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "TRAVELMESH_PORT")
	setDuration(&cfg.Server.ReadTimeout, "TRAVELMESH_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "TRAVELMESH_WRITE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "TRAVELMESH_SHUTDOWN_TIMEOUT")

	setString(&cfg.Store.Backend, "TRAVELMESH_STORE_BACKEND")
	setString(&cfg.Store.DSN, "DATABASE_URL")
	setInt32(&cfg.Store.MaxConns, "TRAVELMESH_PG_MAX_CONNS")
	setInt32(&cfg.Store.MinConns, "TRAVELMESH_PG_MIN_CONNS")
	setDuration(&cfg.Store.SweepInterval, "TRAVELMESH_SWEEP_INTERVAL")
	setDuration(&cfg.Store.MaxIdle, "TRAVELMESH_CONVERSATION_MAX_IDLE")

	setString(&cfg.NATS.URL, "NATS_URL")

	setString(&cfg.Model.Provider, "TRAVELMESH_MODEL_PROVIDER")
	setString(&cfg.Model.Name, "TRAVELMESH_MODEL_NAME")
	setString(&cfg.Model.APIKey, "TRAVELMESH_MODEL_API_KEY")

	setInt64(&cfg.Coordination.MaxConcurrent, "TRAVELMESH_MAX_CONCURRENT")
	setDuration(&cfg.Coordination.ChatTimeout, "TRAVELMESH_CHAT_TIMEOUT")
	setDuration(&cfg.Coordination.PlanTimeout, "TRAVELMESH_PLAN_TIMEOUT")
	setString(&cfg.Coordination.FallbackAgent, "TRAVELMESH_FALLBACK_AGENT")

	setString(&cfg.Logging.Level, "TRAVELMESH_LOG_LEVEL")
	setString(&cfg.Logging.Format, "TRAVELMESH_LOG_FORMAT")
	setString(&cfg.Logging.Service, "TRAVELMESH_LOG_SERVICE")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Store.Backend != "memory" && cfg.Store.Backend != "postgres" {
		return fmt.Errorf("store.backend must be memory or postgres, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "postgres" && cfg.Store.DSN == "" {
		return errors.New("store.dsn is required for the postgres backend")
	}
	if cfg.Store.MaxConns < 1 {
		return errors.New("store.max_conns must be >= 1")
	}
	if cfg.Coordination.MaxConcurrent < 1 {
		return errors.New("coordination.max_concurrent must be >= 1")
	}
	switch cfg.Model.Provider {
	case "openai", "anthropic", "mock":
	default:
		return fmt.Errorf("model.provider must be openai, anthropic or mock, got %q", cfg.Model.Provider)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(n)
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
