// SPDX-License-Identifier: MIT

// Package metrics defines Prometheus metrics for flowsearch runs.
//
// Unlike a process-global registry, every Metrics value is registered on
// the Registerer it is built with, so tests and embedded callers can use a
// private prometheus.NewRegistry().
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Mode labels.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Metrics groups the collectors updated by the coordinator and the CLI.
type Metrics struct {
	SearchesTotal       *prometheus.CounterVec
	StatesExpanded      prometheus.Counter
	MemoHits            prometheus.Counter
	PartitionsEvaluated prometheus.Counter
	AbortedRuns         prometheus.Counter
	SolveDuration       *prometheus.HistogramVec
}

// New builds and registers the collectors on reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowsearch_searches_total",
				Help: "Total completed searches by mode",
			},
			[]string{"mode"},
		),
		StatesExpanded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flowsearch_states_expanded_total",
				Help: "Search states whose successors were enumerated",
			},
		),
		MemoHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flowsearch_memo_hits_total",
				Help: "Search states answered from a memo table",
			},
		),
		PartitionsEvaluated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flowsearch_partitions_evaluated_total",
				Help: "Source assignments evaluated by the coordinator",
			},
		),
		AbortedRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flowsearch_aborted_runs_total",
				Help: "Coordinator runs stopped by cancellation or deadline",
			},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowsearch_solve_duration_seconds",
				Help:    "Wall-clock duration of a solve",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"mode"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.SearchesTotal, m.StatesExpanded, m.MemoHits,
			m.PartitionsEvaluated, m.AbortedRuns, m.SolveDuration,
		)
	}

	return m
}

// ObserveSolve records one finished search of the given mode.
// Safe on a nil receiver.
func (m *Metrics) ObserveSolve(mode string, elapsed time.Duration, aborted bool) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(mode).Inc()
	m.SolveDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if aborted {
		m.AbortedRuns.Inc()
	}
}

// AddWork adds memo counters and evaluated assignments. Safe on a nil receiver.
func (m *Metrics) AddWork(expanded, hits, partitions int64) {
	if m == nil {
		return
	}
	m.StatesExpanded.Add(float64(expanded))
	m.MemoHits.Add(float64(hits))
	m.PartitionsEvaluated.Add(float64(partitions))
}
