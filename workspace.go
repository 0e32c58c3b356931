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

package locate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/batch"
	"github.com/poiesic/locate/config"
	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/dom"
	"github.com/poiesic/locate/locator"
	"github.com/poiesic/locate/metrics"
	"github.com/poiesic/locate/search"
	"github.com/poiesic/locate/storage"
	"github.com/poiesic/locate/storage/badger"
)

// AliasPrefix marks a locator that refers to a saved alias, as in "@login".
const AliasPrefix = "@"

var (
	// ErrUnknownAlias indicates a locator refers to an alias that does not exist.
	ErrUnknownAlias = errors.New("unknown alias")

	// ErrNoSnapshots indicates a batch run found nothing to run against.
	ErrNoSnapshots = errors.New("no snapshots")
)

// Workspace ties a snapshot store to the locator parser, the search engine
// and the batch runner.
type Workspace struct {
	backend   *badger.Backend
	snapshots storage.SnapshotRepository
	aliases   storage.AliasRepository
	registry  *action.Registry
	parser    *locator.Parser
	scope     *search.Scope
	searcher  *search.Searcher
	runner    *batch.Runner
	metrics   *prometheus.Registry
	logger    *slog.Logger
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*workspaceOptions)

type workspaceOptions struct {
	logger   *slog.Logger
	progress io.Writer
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger *slog.Logger) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.logger = logger
	}
}

// WithProgress makes batch runs report progress to w.
func WithProgress(w io.Writer) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.progress = w
	}
}

// NewWorkspace opens the workspace described by cfg. A nil cfg means
// config.DefaultConfig().
func NewWorkspace(ctx context.Context, cfg *config.Config, opts ...WorkspaceOption) (*Workspace, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &workspaceOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	logger := options.logger

	backend, err := badger.OpenBackendWithRetry(ctx, cfg.DatabasePath, cfg.InMemory, logger,
		cfg.OpenAttempts, cfg.OpenRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Workspace{
		backend: backend,
		scope:   search.NewScope(nil),
		metrics: prometheus.NewRegistry(),
		logger:  logger,
	}
	if err := w.init(cfg, options); err != nil {
		w.Close()
		return nil, err
	}

	logger.Debug("workspace opened", "path", cfg.DatabasePath, "inMemory", cfg.InMemory)
	return w, nil
}

func (w *Workspace) init(cfg *config.Config, options *workspaceOptions) error {
	snapshots, err := badger.NewSnapshotRepository(w.backend)
	if err != nil {
		return err
	}
	w.snapshots = snapshots

	aliases, err := badger.NewAliasRepository(w.backend)
	if err != nil {
		return err
	}
	w.aliases = aliases

	if w.registry, err = dom.NewRegistry(); err != nil {
		return err
	}

	w.parser, err = locator.NewParser(w.registry,
		locator.WithCacheSize(cfg.CacheSize),
		locator.WithSuggestions(cfg.Suggestions),
		locator.WithLogger(w.logger),
	)
	if err != nil {
		return err
	}

	monitor, err := metrics.NewMonitor(w.metrics)
	if err != nil {
		return err
	}
	w.searcher, err = search.NewSearcher(w.registry,
		search.WithScope(w.scope),
		search.WithMonitor(monitor),
		search.WithLogger(w.logger),
	)
	if err != nil {
		return err
	}

	runnerOpts := []batch.Option{
		batch.WithPoolSize(cfg.PoolSize),
		batch.WithLogger(w.logger),
	}
	if options.progress != nil {
		runnerOpts = append(runnerOpts, batch.WithProgress(options.progress, cfg.ProgressInterval))
	}
	w.runner, err = batch.NewRunner(w, w.searcher, runnerOpts...)
	return err
}

// Close releases the worker pool and closes storage.
func (w *Workspace) Close() error {
	if w.runner != nil {
		w.runner.Release()
	}
	if w.aliases != nil {
		if err := w.aliases.Close(); err != nil {
			w.logger.Error("error closing alias repository", "err", err)
		}
	}
	if w.snapshots != nil {
		if err := w.snapshots.Close(); err != nil {
			w.logger.Error("error closing snapshot repository", "err", err)
		}
	}
	if err := w.backend.Close(); err != nil {
		w.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (w *Workspace) Registry() *action.Registry {
	return w.registry
}

func (w *Workspace) Searcher() *search.Searcher {
	return w.searcher
}

func (w *Workspace) SnapshotRepository() storage.SnapshotRepository {
	return w.snapshots
}

func (w *Workspace) AliasRepository() storage.AliasRepository {
	return w.aliases
}

// Gatherer exposes the search metrics collected by this workspace.
func (w *Workspace) Gatherer() prometheus.Gatherer {
	return w.metrics
}

// WriteMetrics writes the collected metrics to path in the Prometheus text
// format.
func (w *Workspace) WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, w.metrics)
}

// Expand returns the locator text an alias reference stands for. Any other
// text is returned unchanged.
func (w *Workspace) Expand(ctx context.Context, text string) (string, error) {
	name, ok := strings.CutPrefix(strings.TrimSpace(text), AliasPrefix)
	if !ok {
		return text, nil
	}
	alias, err := w.aliases.GetAlias(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrUnknownAlias, name)
	}
	if err != nil {
		return "", err
	}
	return alias.Locator, nil
}

// Parse converts a locator or an alias reference into a query.
func (w *Workspace) Parse(text string) (*core.Query, error) {
	expanded, err := w.Expand(context.Background(), text)
	if err != nil {
		return nil, err
	}
	return w.parser.Parse(expanded)
}

// ParseSet converts a comma-separated list of locators into queries.
// Alias references are not expanded inside sets.
func (w *Workspace) ParseSet(locators string) ([]*core.Query, error) {
	return w.parser.ParseSet(locators)
}

// AddSnapshot stores html under name.
func (w *Workspace) AddSnapshot(ctx context.Context, name, url, html string) (*core.Snapshot, error) {
	added, err := w.snapshots.AddSnapshots(ctx, &core.Snapshot{Name: name, URL: url, HTML: html})
	if err != nil {
		return nil, err
	}
	return added[0], nil
}

// Snapshot retrieves a stored snapshot by name.
func (w *Workspace) Snapshot(ctx context.Context, name string) (*core.Snapshot, error) {
	return w.snapshots.FindSnapshotByName(ctx, name)
}

// Snapshots lists every stored snapshot ordered by name.
func (w *Workspace) Snapshots(ctx context.Context) ([]*core.Snapshot, error) {
	return w.snapshots.ListSnapshots(ctx)
}

// DeleteSnapshot removes the snapshot called name.
func (w *Workspace) DeleteSnapshot(ctx context.Context, name string) error {
	snapshot, err := w.snapshots.FindSnapshotByName(ctx, name)
	if err != nil {
		return err
	}
	return w.snapshots.DeleteSnapshots(ctx, snapshot.Id)
}

// SaveAlias stores locator under name once it parses. Aliases cannot refer
// to other aliases.
func (w *Workspace) SaveAlias(ctx context.Context, name, locatorText string) (*core.Alias, error) {
	if strings.HasPrefix(strings.TrimSpace(locatorText), AliasPrefix) {
		return nil, fmt.Errorf("%w: alias %s refers to another alias", core.ErrInvalidAlias, name)
	}
	if _, err := w.parser.Parse(locatorText); err != nil {
		return nil, err
	}
	return w.aliases.SaveAlias(ctx, &core.Alias{Name: name, Locator: locatorText})
}

// Aliases lists every saved alias ordered by name.
func (w *Workspace) Aliases(ctx context.Context) ([]*core.Alias, error) {
	return w.aliases.ListAliases(ctx)
}

// AliasNames lists the alias names starting with prefix.
func (w *Workspace) AliasNames(ctx context.Context, prefix string) ([]string, error) {
	return w.aliases.Names(ctx, prefix)
}

// DeleteAlias removes the alias called name.
func (w *Workspace) DeleteAlias(ctx context.Context, name string) error {
	return w.aliases.DeleteAlias(ctx, name)
}

// Open parses the snapshot called name and makes it the scope of FindInScope.
func (w *Workspace) Open(ctx context.Context, name string) (*dom.Document, error) {
	doc, err := w.document(ctx, name)
	if err != nil {
		return nil, err
	}
	w.scope.Set(doc)
	return doc, nil
}

// FindInScope evaluates locatorText against the snapshot made current by Open.
func (w *Workspace) FindInScope(ctx context.Context, locatorText string) ([]core.Element, error) {
	q, err := w.Parse(locatorText)
	if err != nil {
		return nil, err
	}
	return w.searcher.FindElementsInScope(ctx, q)
}

// Find evaluates locatorText against the snapshot called name.
func (w *Workspace) Find(ctx context.Context, name, locatorText string) ([]core.Element, error) {
	q, err := w.Parse(locatorText)
	if err != nil {
		return nil, err
	}
	doc, err := w.document(ctx, name)
	if err != nil {
		return nil, err
	}
	return w.searcher.FindElements(ctx, doc, q)
}

func (w *Workspace) document(ctx context.Context, name string) (*dom.Document, error) {
	snapshot, err := w.snapshots.FindSnapshotByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", name, err)
	}
	return dom.ParseString(snapshot.Name, snapshot.HTML)
}

// RunBatch evaluates every locator against the named snapshots, or against
// every stored snapshot when names is empty.
func (w *Workspace) RunBatch(ctx context.Context, names, locators []string) (*batch.Report, error) {
	var snapshots []*core.Snapshot
	if len(names) == 0 {
		all, err := w.snapshots.ListSnapshots(ctx)
		if err != nil {
			return nil, err
		}
		snapshots = all
	} else {
		for _, name := range names {
			snapshot, err := w.snapshots.FindSnapshotByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("snapshot %s: %w", name, err)
			}
			snapshots = append(snapshots, snapshot)
		}
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}
	return w.runner.Run(ctx, snapshots, locators)
}
