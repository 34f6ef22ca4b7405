// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// impl_ring.go: Ring(n): n nodes joined by two-way tunnels i ↔ (i+1)%n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Nodes added in ascending index order; tunnels emitted by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that builds an n-node ring of two-way tunnels.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		if err := addNodes(methodRing, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addTunnel(methodRing, g, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
