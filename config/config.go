// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds workspace configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds configuration for a locate workspace.
type Config struct {
	// DatabasePath is the BadgerDB directory holding snapshots and aliases.
	// A leading "~/" is expanded to the home directory.
	// Default: ".locate"
	DatabasePath string `yaml:"database_path"`

	// InMemory keeps the database in memory. Nothing is persisted.
	InMemory bool `yaml:"in_memory"`

	// OpenAttempts is how many times opening the database is attempted
	// while another process holds its lock.
	// Default: 3
	OpenAttempts int `yaml:"open_attempts"`

	// OpenRetryDelay is the base delay between open attempts; it doubles on
	// each retry.
	// Default: 200ms
	OpenRetryDelay time.Duration `yaml:"open_retry_delay"`

	// PoolSize is the number of batch workers.
	// Default: runtime.NumCPU() / 2, at least 1
	PoolSize int `yaml:"pool_size"`

	// CacheSize is the number of parsed locators kept by the parser.
	// Zero disables the cache.
	// Default: 256
	CacheSize int `yaml:"cache_size"`

	// Suggestions enables "did you mean" hints for unknown type names.
	// Default: true
	Suggestions bool `yaml:"suggestions"`

	// ProgressInterval reports batch progress every N checks.
	// Default: 10
	ProgressInterval int `yaml:"progress_interval"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// MetricsFile, when set, receives search metrics in the Prometheus text
	// format after each command.
	MetricsFile string `yaml:"metrics_file"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDatabasePath sets the database directory.
func WithDatabasePath(path string) ConfigOption {
	return func(c *Config) {
		c.DatabasePath = path
	}
}

// WithInMemory keeps the database in memory.
func WithInMemory(inMemory bool) ConfigOption {
	return func(c *Config) {
		c.InMemory = inMemory
	}
}

// WithOpenRetry sets the open attempts and base retry delay.
func WithOpenRetry(attempts int, delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.OpenAttempts = attempts
		c.OpenRetryDelay = delay
	}
}

// WithPoolSize sets the number of batch workers.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithCacheSize sets the parser cache size.
func WithCacheSize(size int) ConfigOption {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// WithSuggestions enables or disables type name suggestions.
func WithSuggestions(enabled bool) ConfigOption {
	return func(c *Config) {
		c.Suggestions = enabled
	}
}

// WithProgressInterval sets the batch progress interval.
func WithProgressInterval(interval int) ConfigOption {
	return func(c *Config) {
		c.ProgressInterval = interval
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithMetricsFile sets the metrics output file.
func WithMetricsFile(path string) ConfigOption {
	return func(c *Config) {
		c.MetricsFile = path
	}
}

// DefaultConfig returns a Config with sensible defaults for a local workspace.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		DatabasePath:     ".locate",
		OpenAttempts:     3,
		OpenRetryDelay:   200 * time.Millisecond,
		PoolSize:         poolSize,
		CacheSize:        256,
		Suggestions:      true,
		ProgressInterval: 10,
		LogLevel:         "info",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDatabasePath("/var/lib/locate"),
//	    WithPoolSize(8),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string, opts ...ConfigOption) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if rest, ok := strings.CutPrefix(c.DatabasePath, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			c.DatabasePath = filepath.Join(home, rest)
		}
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !c.InMemory && c.DatabasePath == "" {
		return fmt.Errorf("%w: database_path is required", ErrInvalidConfig)
	}
	if c.OpenAttempts < 1 {
		return fmt.Errorf("%w: open_attempts must be at least 1", ErrInvalidConfig)
	}
	if c.OpenRetryDelay < 0 {
		return fmt.Errorf("%w: open_retry_delay cannot be negative", ErrInvalidConfig)
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("%w: pool_size must be at least 1", ErrInvalidConfig)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size cannot be negative", ErrInvalidConfig)
	}
	if c.ProgressInterval < 1 {
		return fmt.Errorf("%w: progress_interval must be at least 1", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: invalid log level %q: must be one of debug, info, warn, error", ErrInvalidConfig, level)
	}
}
