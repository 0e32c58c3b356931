package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/locate/core"
)

// Result is the outcome of one locator evaluated against one snapshot.
type Result struct {
	Snapshot   string
	SnapshotID core.ID
	Locator    string
	// Elements describes each matched element, in document order.
	Elements []string
	Err      error
}

// Matches returns the number of matched elements.
func (r Result) Matches() int {
	return len(r.Elements)
}

// Report collects the results of a run, ordered by snapshot then locator.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
}

// Failed returns the number of pairs that ended with an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Matched returns the number of pairs that found at least one element.
func (r *Report) Matched() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && res.Matches() > 0 {
			n++
		}
	}
	return n
}

// ByLocator groups results by locator text.
func (r *Report) ByLocator() map[string][]Result {
	out := make(map[string][]Result)
	for _, res := range r.Results {
		out[res.Locator] = append(out[res.Locator], res)
	}
	return out
}
