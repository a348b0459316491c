// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/store"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// LLM holds provider selection and per-provider credentials.
	LLM llm.Config
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:     envOr("TUTORLOOP_ADDR", ":8080"),
		DBPath:   envOr("TUTORLOOP_DB_PATH", defaultDBPath()),
		LogLevel: envOr("TUTORLOOP_LOG_LEVEL", "INFO"),
		LLM:      llm.ConfigFromEnv(),
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "TUTORLOOP_ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "TUTORLOOP_DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("TUTORLOOP_LOG_LEVEL must be DEBUG, INFO, WARN, or ERROR, got %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func defaultDBPath() string {
	p, err := store.DefaultDBPath()
	if err != nil {
		return "tutorloop.db"
	}
	return p
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
