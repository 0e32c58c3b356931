package batch

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports how many checks of a run have completed and how
// many of them failed. A nil tracker ignores every call.
type ProgressTracker struct {
	mu       sync.Mutex
	w        io.Writer
	total    int
	every    int
	done     int
	failed   int
	reported int
	started  time.Time
}

// NewProgressTracker creates a tracker for total checks writing a line to w
// every interval completed checks. An interval below 1 reports every check.
func NewProgressTracker(w io.Writer, total, interval int) *ProgressTracker {
	if interval < 1 {
		interval = 1
	}
	return &ProgressTracker{w: w, total: total, every: interval}
}

// Start resets the counters and the clock.
func (p *ProgressTracker) Start() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = time.Now()
	p.done, p.failed, p.reported = 0, 0, 0
}

// Record counts one finished check.
func (p *ProgressTracker) Record(err error) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started.IsZero() || p.done == p.total {
		return
	}
	p.done++
	if err != nil {
		p.failed++
	}
	if p.done-p.reported >= p.every {
		p.print()
		p.reported = p.done
	}
}

// Finish prints the final line. Checks that never reported are counted as
// done so the line always ends at the total.
func (p *ProgressTracker) Finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started.IsZero() {
		return
	}
	p.done = p.total
	p.print()
	fmt.Fprintln(p.w)
}

// Elapsed returns the time since Start, or 0 before Start.
func (p *ProgressTracker) Elapsed() time.Duration {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started.IsZero() {
		return 0
	}
	return time.Since(p.started)
}

// Failed returns the number of recorded failures.
func (p *ProgressTracker) Failed() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failed
}

// print must be called with mu held.
func (p *ProgressTracker) print() {
	percent := 100.0
	if p.total > 0 {
		percent = float64(p.done) / float64(p.total) * 100
	}
	rate := float64(p.done) / time.Since(p.started).Seconds()

	fmt.Fprintf(p.w, "\rProgress: %d/%d (%.1f%%) - %d failed - %.1f checks/s",
		p.done, p.total, percent, p.failed, rate)
}
