package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TUTORLOOP_ADDR", "TUTORLOOP_DB_PATH", "TUTORLOOP_LOG_LEVEL"} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			defer os.Setenv(key, old)
		}
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TUTORLOOP_ADDR", ":9999")
	t.Setenv("TUTORLOOP_DB_PATH", "/tmp/tutor.db")
	t.Setenv("TUTORLOOP_LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/tutor.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := Config{Addr: ":8080", DBPath: "tutorloop.db", LogLevel: "INFO"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "lowercase log level accepted",
			mutate: func(c *Config) { c.LogLevel = "debug" },
		},
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.Addr = "" },
			wantErr: "TUTORLOOP_ADDR",
		},
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.DBPath = "" },
			wantErr: "TUTORLOOP_DB_PATH",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "VERBOSE" },
			wantErr: "TUTORLOOP_LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAggregatesProblems(t *testing.T) {
	cfg := Config{LogLevel: "nope"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUTORLOOP_ADDR")
	assert.Contains(t, err.Error(), "TUTORLOOP_DB_PATH")
	assert.Contains(t, err.Error(), "TUTORLOOP_LOG_LEVEL")
}
