// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// impl_grid.go: Grid(w, h): w·h nodes in row-major order, two-way tunnels
// to the right and lower neighbors.
//
// Contract:
//   • w ≥ 1, h ≥ 1 (else ErrTooFewNodes).
//   • Node (x,y) has index y*w + x.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor for a w×h 4-neighborhood grid.
func Grid(w, h int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if w < 1 || h < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, w, h, ErrTooFewNodes)
		}
		if err := addNodes(methodGrid, g, cfg, w*h); err != nil {
			return err
		}
		var x, y, idx int
		for y = 0; y < h; y++ {
			for x = 0; x < w; x++ {
				idx = y*w + x
				if x+1 < w {
					if err := addTunnel(methodGrid, g, cfg.idFn(idx), cfg.idFn(idx+1)); err != nil {
						return err
					}
				}
				if y+1 < h {
					if err := addTunnel(methodGrid, g, cfg.idFn(idx), cfg.idFn(idx+w)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
