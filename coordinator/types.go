// SPDX-License-Identifier: MIT

package coordinator

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/metrics"
	"github.com/katalvlaran/flowsearch/search"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for coordinator runs.
var (
	// ErrNilProblem indicates New was given a nil *search.Problem.
	ErrNilProblem = errors.New("coordinator: problem is nil")

	// ErrNoAgents indicates a run with fewer than one agent.
	ErrNoAgents = errors.New("coordinator: at least one agent is required")

	// ErrBadBudget indicates an agent with a negative time budget.
	ErrBadBudget = errors.New("coordinator: agent budget must be >= 0")
)

// Agent is one worker walking the network.
type Agent struct {
	// Start is the node ID the agent begins at.
	Start string

	// Budget is the agent's time budget in minutes.
	Budget int
}

// Result is the outcome of a coordinator run.
type Result struct {
	// Value is the best total found.
	Value int

	// Assignment holds each agent's sources, in agent order.
	Assignment []bitset.Set

	// Values holds each agent's single-agent optimum over its subset.
	Values []int

	// Partitions is the number of assignments evaluated.
	Partitions int64

	// Partial reports that the run stopped early on ctx; Value is then a
	// lower bound.
	Partial bool

	// RunID identifies the run in logs.
	RunID string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers sets the worker count; n < 1 keeps the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the run logger. nil keeps the default, which discards.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics reports run counters to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// Coordinator runs multi-agent searches over one Problem.
// It is safe for concurrent use.
type Coordinator struct {
	problem *search.Problem
	workers int
	log     *logrus.Logger
	metrics *metrics.Metrics
}

// New returns a Coordinator for p.
func New(p *search.Problem, opts ...Option) (*Coordinator, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	c := &Coordinator{
		problem: p,
		workers: runtime.GOMAXPROCS(0),
		log:     search.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Problem returns the problem the coordinator searches.
func (c *Coordinator) Problem() *search.Problem { return c.problem }
