// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Limits of the packed memo key: mask in the low 32 bits, time in the next
// 20 bits, node row in the top 12 bits.
const (
	// MaxSources is the largest number of activatable sources a Problem accepts.
	MaxSources = 32

	// DefaultMaxSources is the capacity ceiling applied when WithMaxSources is not used.
	// Two-agent partitioning over 20 sources stays within interactive time.
	DefaultMaxSources = 20

	// MaxNodes is the largest graph a Problem accepts.
	MaxNodes = 1 << 12

	// MaxBudget is the largest time budget that is memoised. States with more
	// time left are still searched correctly, just not cached.
	MaxBudget = 1<<20 - 1
)

// Sentinel errors for problem construction and searches.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilDistances indicates a nil *matrix.Distances.
	ErrNilDistances = errors.New("search: distances are nil")

	// ErrMismatchedDistances indicates a distance table built from another graph.
	ErrMismatchedDistances = errors.New("search: distances do not match graph")

	// ErrUnknownStart indicates a start node missing from the graph.
	ErrUnknownStart = errors.New("search: unknown start node")

	// ErrUnknownSource indicates an ID that is not an activatable source.
	ErrUnknownSource = errors.New("search: unknown source")

	// ErrTooManySources indicates more sources than the configured ceiling.
	ErrTooManySources = errors.New("search: input too large: too many activatable sources")

	// ErrTooManyNodes indicates a graph larger than MaxNodes.
	ErrTooManyNodes = errors.New("search: input too large: too many nodes")

	// ErrBadBudget indicates a negative time budget.
	ErrBadBudget = errors.New("search: time budget must be >= 0")
)

// Option configures a Problem.
type Option func(*options)

type options struct {
	maxSources int
	log        *logrus.Logger
}

func defaultOptions() options {
	return options{maxSources: DefaultMaxSources, log: DiscardLogger()}
}

// WithMaxSources sets the source-count ceiling (clamped to [1, MaxSources]).
func WithMaxSources(n int) Option {
	return func(o *options) {
		switch {
		case n < 1:
			o.maxSources = 1
		case n > MaxSources:
			o.maxSources = MaxSources
		default:
			o.maxSources = n
		}
	}
}

// WithLogger sets the logger used for diagnostics. nil keeps the default.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// Activation is one step of a plan.
type Activation struct {
	// Node is the activated source.
	Node string

	// Minute is the elapsed time when the activation completes.
	Minute int

	// Remaining is the time left after the activation.
	Remaining int

	// Gain is Value·Remaining, the contribution of this step.
	Gain int
}

// Plan is one optimal activation order.
type Plan struct {
	// Value is the total gain; equals the sum of Steps[i].Gain.
	Value int

	// Steps lists activations in time order.
	Steps []Activation
}
