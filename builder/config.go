// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = LetterID ("AA","AB",...)
//   • rng  = seeded with defaultSeed; WithSeed(0) also maps to defaultSeed.

package builder

import "math/rand"

// defaultSeed is the fixed seed used when the caller does not pick one.
const defaultSeed int64 = 1

// config aggregates all knobs used by constructors.
// It is passed by value to constructors.
type config struct {
	idFn IDFn       // index → node ID
	rng  *rand.Rand // shared by constructors in call order
}

// Option customizes the builder configuration.
type Option func(*config)

// WithSeed freezes the random stream used by RandomSparse and Values.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithIDScheme replaces the node ID scheme. nil keeps the default.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// newConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{idFn: LetterID, rng: rngFromSeed(defaultSeed)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
