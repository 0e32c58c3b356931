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

// Package metrics exports search activity to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/search"
)

const namespace = "locate"

// Monitor is a search.SearchMonitor that records Prometheus metrics.
// Nested child searches are counted like top level ones.
type Monitor struct {
	searches      *prometheus.CounterVec
	found         *prometheus.HistogramVec
	results       *prometheus.HistogramVec
	filterApplied *prometheus.CounterVec
	pruned        *prometheus.CounterVec
}

var _ search.SearchMonitor = (*Monitor)(nil)

// NewMonitor creates a monitor and registers its collectors with reg.
func NewMonitor(reg prometheus.Registerer) (*Monitor, error) {
	m := &Monitor{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of searches started, by primary search type",
		}, []string{"type"}),
		found: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "primary_search_elements",
			Help:      "Elements returned by the primary search before filtering",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"type"}),
		results: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Elements remaining after filters and child pruning",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"type"}),
		filterApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filters_applied_total",
			Help:      "Number of filter values applied, by filter type",
		}, []string{"type"}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_pruned_total",
			Help:      "Elements dropped because a child search found nothing, by child search type",
		}, []string{"type"}),
	}

	for _, c := range []prometheus.Collector{m.searches, m.found, m.results, m.filterApplied, m.pruned} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Monitor) Start(q *core.Query, _ core.SearchContext) {
	m.searches.WithLabelValues(q.Type().Key()).Inc()
}

func (m *Monitor) AfterPrimarySearch(q *core.Query, found []core.Element) {
	m.found.WithLabelValues(q.Type().Key()).Observe(float64(len(found)))
}

func (m *Monitor) AfterFilter(t *core.ActionType, _ string, _ []core.Element) {
	m.filterApplied.WithLabelValues(t.Key()).Inc()
}

func (m *Monitor) Pruned(child *core.Query, _ core.Element) {
	m.pruned.WithLabelValues(child.Type().Key()).Inc()
}

func (m *Monitor) Finish(q *core.Query, results []core.Element) {
	m.results.WithLabelValues(q.Type().Key()).Observe(float64(len(results)))
}
