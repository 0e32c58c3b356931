package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/dom"
)

// QueryParser converts locator text into queries. *locator.Parser satisfies it.
type QueryParser interface {
	Parse(locator string) (*core.Query, error)
}

// Finder runs a query inside a search context. *search.Searcher satisfies it.
type Finder interface {
	FindElements(ctx context.Context, sc core.SearchContext, q *core.Query) ([]core.Element, error)
}

// Runner evaluates locators against snapshots on a worker pool.
type Runner struct {
	parser         QueryParser
	finder         Finder
	pool           *ants.Pool
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithProgress reports progress to w every interval checks.
func WithProgress(w io.Writer, interval int) Option {
	return func(r *Runner) error {
		r.progress = w
		r.reportInterval = interval
		return nil
	}
}

// NewRunner creates a batch runner.
func NewRunner(parser QueryParser, finder Finder, opts ...Option) (*Runner, error) {
	if parser == nil {
		return nil, ErrParserRequired
	}
	if finder == nil {
		return nil, ErrSearcherRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		parser:         parser,
		finder:         finder,
		pool:           pool,
		reportInterval: 10,
		logger:         slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

type parsedLocator struct {
	text  string
	query *core.Query
}

// Run evaluates every locator against every snapshot and waits for all
// checks to finish. Locators that fail to parse abort the run before any
// search starts; every other failure is recorded in the report.
func (r *Runner) Run(ctx context.Context, snapshots []*core.Snapshot, locators []string) (*Report, error) {
	if len(locators) == 0 {
		return nil, ErrNoLocators
	}

	parsed := make([]parsedLocator, 0, len(locators))
	for _, text := range locators {
		q, err := r.parser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("locator %q: %w", text, err)
		}
		parsed = append(parsed, parsedLocator{text: text, query: q})
	}

	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, len(snapshots)*len(parsed)),
	}
	logger := r.logger.With("run", report.RunID.String())
	logger.Info("batch started", "snapshots", len(snapshots), "locators", len(parsed))

	var tracker *ProgressTracker
	if r.progress != nil {
		tracker = NewProgressTracker(r.progress, len(report.Results), r.reportInterval)
	}
	tracker.Start()

	var wg sync.WaitGroup
	for si, snapshot := range snapshots {
		doc, docErr := dom.ParseString(snapshot.Name, snapshot.HTML)
		if docErr != nil {
			logger.Warn("snapshot could not be parsed", "snapshot", snapshot.Name, "err", docErr)
		}

		for li, loc := range parsed {
			i := si*len(parsed) + li
			report.Results[i] = Result{
				Snapshot:   snapshot.Name,
				SnapshotID: snapshot.Id,
				Locator:    loc.text,
			}
			if docErr != nil {
				report.Results[i].Err = docErr
				tracker.Record(docErr)
				continue
			}

			wg.Add(1)
			result := &report.Results[i]
			err := r.pool.Submit(func() {
				defer wg.Done()
				result.Elements, result.Err = r.check(ctx, doc, loc.query)
				tracker.Record(result.Err)
			})
			if err != nil {
				wg.Done()
				result.Err = err
				tracker.Record(err)
			}
		}
	}
	wg.Wait()

	tracker.Finish()
	report.Duration = time.Since(report.StartedAt)
	logger.Info("batch finished", "checks", len(report.Results),
		"matched", report.Matched(), "failed", report.Failed(), "duration", report.Duration)
	return report, nil
}

func (r *Runner) check(ctx context.Context, doc *dom.Document, q *core.Query) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	elements, err := r.finder.FindElements(ctx, doc, q)
	if err != nil {
		return nil, err
	}
	described := make([]string, len(elements))
	for i, e := range elements {
		described[i] = e.String()
	}
	return described, nil
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
