// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// impl_values.go: Values(fraction, max): turn existing nodes into sources.
//
// Contract:
//   • 0 ≤ fraction ≤ 1 (else ErrInvalidFraction); max ≥ 1 (else ErrInvalidValue).
//   • Visits g.Nodes() in sorted order; each node becomes a source with
//     probability fraction and gets a value uniform in [1, max].
//   • The first node in sorted order is skipped so it can serve as a
//     zero-value start, like "AA" in the puzzle input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

const methodValues = "Values"

// Values returns a Constructor that assigns random source values.
func Values(fraction float64, maxValue int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if fraction < 0 || fraction > 1 {
			return fmt.Errorf("%s: fraction=%.6f not in [0,1]: %w", methodValues, fraction, ErrInvalidFraction)
		}
		if maxValue < 1 {
			return fmt.Errorf("%s: max=%d: %w", methodValues, maxValue, ErrInvalidValue)
		}
		for i, id := range g.Nodes() {
			if i == 0 {
				continue
			}
			// Two draws per node regardless of outcome keep later nodes stable.
			pick := cfg.rng.Float64()
			v := 1 + cfg.rng.Intn(maxValue)
			if pick >= fraction {
				continue
			}
			if err := g.SetValue(id, v); err != nil {
				return fmt.Errorf("%s: SetValue(%s): %w", methodValues, id, err)
			}
		}

		return nil
	}
}
