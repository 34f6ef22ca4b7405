// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi-like directed graph.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Every ordered pair (i,j), i≠j, becomes a directed edge with probability p.
//   • Trial order is i asc, j asc, so a fixed seed yields a fixed graph.
//   • The result may be disconnected; that is intended (sentinel distances).

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor sampling directed edges with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if err := addNodes(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				// One draw per ordered pair keeps the stream aligned for any p.
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
