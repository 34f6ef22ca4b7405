// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// api.go: the Build orchestrator and the Constructor type.
//
// Design contract:
//   • One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a new core.Graph with gopts, resolves bopts, and applies all
// constructors in order. The first constructor error is wrapped with
// "Build: %w" and returned.
//
// Complexity: Σ cost of each constructor.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes registers n zero-value nodes with IDs cfg.idFn(0..n-1).
func addNodes(method string, g *core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id, 0); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addTunnel adds both directed edges u→v and v→u.
func addTunnel(method string, g *core.Graph, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if err := g.AddEdge(v, u); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
	}

	return nil
}
