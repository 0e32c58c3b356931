package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/locate"
	"github.com/poiesic/locate/config"
)

func setupLogger(c *cli.Context) error {
	return setLogLevel(c.String("log-level"))
}

// setLogLevel installs a stderr text logger at level as the default.
func setLogLevel(level string) error {
	l, err := config.ParseLogLevel(level)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	}))
	slog.SetDefault(logger)

	return nil
}

// loadConfig reads --config when given and lets global flags override it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var opts []config.ConfigOption
	if c.IsSet("db") {
		opts = append(opts, config.WithDatabasePath(c.String("db")))
	}
	if c.IsSet("in-memory") {
		opts = append(opts, config.WithInMemory(c.Bool("in-memory")))
	}
	if c.IsSet("metrics-file") {
		opts = append(opts, config.WithMetricsFile(c.String("metrics-file")))
	}
	if c.IsSet("pool-size") {
		opts = append(opts, config.WithPoolSize(c.Int("pool-size")))
	}
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}

	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.NewConfig(opts...), nil
}

// withWorkspace opens the workspace for the duration of fn and writes
// metrics afterwards when a metrics file is configured. The logger is rebuilt
// from the resolved config, where --log-level overrides log_level.
func withWorkspace(c *cli.Context, fn func(ctx context.Context, w *locate.Workspace) error, opts ...locate.WorkspaceOption) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := setLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	ctx := c.Context
	w, err := locate.NewWorkspace(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := fn(ctx, w); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := w.WriteMetrics(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		slog.Debug("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}
