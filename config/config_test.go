package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".locate", cfg.DatabasePath)
	assert.False(t, cfg.InMemory)
	assert.Equal(t, 3, cfg.OpenAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.OpenRetryDelay)
	assert.GreaterOrEqual(t, cfg.PoolSize, 1)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.True(t, cfg.Suggestions)
	assert.Equal(t, 10, cfg.ProgressInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithDatabasePath("/var/lib/locate"),
		WithInMemory(true),
		WithOpenRetry(5, time.Second),
		WithPoolSize(8),
		WithCacheSize(0),
		WithSuggestions(false),
		WithProgressInterval(50),
		WithLogLevel("DEBUG"),
		WithMetricsFile("/tmp/locate.prom"),
	)

	assert.Equal(t, "/var/lib/locate", cfg.DatabasePath)
	assert.True(t, cfg.InMemory)
	assert.Equal(t, 5, cfg.OpenAttempts)
	assert.Equal(t, time.Second, cfg.OpenRetryDelay)
	assert.Equal(t, 8, cfg.PoolSize)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.False(t, cfg.Suggestions)
	assert.Equal(t, 50, cfg.ProgressInterval)
	assert.Equal(t, "/tmp/locate.prom", cfg.MetricsFile)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "debug", cfg.LogLevel, "validate normalizes the level")
}

func TestConfigNormalize(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := NewConfig(WithDatabasePath("~/data/locate"), WithLogLevel("  Warn "))
	cfg.Normalize()

	assert.Equal(t, filepath.Join(home, "data", "locate"), cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		wantErr string
	}{
		{"missing database path", []ConfigOption{WithDatabasePath("")}, "database_path is required"},
		{"in memory needs no path", []ConfigOption{WithDatabasePath(""), WithInMemory(true)}, ""},
		{"zero open attempts", []ConfigOption{WithOpenRetry(0, time.Second)}, "open_attempts must be at least 1"},
		{"negative retry delay", []ConfigOption{WithOpenRetry(1, -time.Second)}, "open_retry_delay cannot be negative"},
		{"zero pool size", []ConfigOption{WithPoolSize(0)}, "pool_size must be at least 1"},
		{"negative cache size", []ConfigOption{WithCacheSize(-1)}, "cache_size cannot be negative"},
		{"zero progress interval", []ConfigOption{WithProgressInterval(0)}, "progress_interval must be at least 1"},
		{"bad log level", []ConfigOption{WithLogLevel("verbose")}, `invalid log level "verbose"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "locate.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
database_path: /srv/locate
pool_size: 2
open_retry_delay: 1s
suggestions: false
`), 0644))

		cfg, err := Load(path, WithLogLevel("error"))
		require.NoError(t, err)
		assert.Equal(t, "/srv/locate", cfg.DatabasePath)
		assert.Equal(t, 2, cfg.PoolSize)
		assert.Equal(t, time.Second, cfg.OpenRetryDelay)
		assert.False(t, cfg.Suggestions)
		assert.Equal(t, 256, cfg.CacheSize, "unset keys keep defaults")
		assert.Equal(t, "error", cfg.LogLevel, "options apply after the file")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().DatabasePath, cfg.DatabasePath)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pool: 2\n"), 0644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("trace")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
