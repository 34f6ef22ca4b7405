// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build the distance table of a valve graph and close it under
//     Floyd–Warshall with a deterministic loop order.
//
// Contract:
//   - Diagonal is 0; direct edges are 1; Unreachable means "no path".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

// Operation name constants for unified error wrapping.
const (
	opBuild         = "Build"
	opFloydWarshall = "FloydWarshall"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Build computes the all-pairs shortest path table of g.
//
// Implementation:
//   - Stage 1: Validate g (non-nil, non-empty).
//   - Stage 2: Allocate n×n with diag 0 and Unreachable elsewhere, rows in Nodes() order.
//   - Stage 3: Set 1 for each directed edge (self-loops keep distance 0).
//   - Stage 4: Close with FloydWarshall.
//
// Complexity: O(V^3) time, O(V^2) space.
func Build(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opBuild, ErrGraphNil)
	}
	ids := g.Nodes()
	if len(ids) == 0 {
		return nil, matrixErrorf(opBuild, ErrEmptyGraph)
	}

	d := newDistances(ids)

	var (
		i, j int
		from string
		nbs  []string
		to   string
		err  error
	)
	for i, from = range ids {
		nbs, err = g.Neighbors(from)
		if err != nil {
			return nil, matrixErrorf(opBuild, err)
		}
		for _, to = range nbs {
			j = d.index[to]
			if i != j {
				d.data[i*d.n+j] = 1
			}
		}
	}

	if err = FloydWarshall(d); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	return d, nil
}

// FloydWarshall closes d in place under shortest paths.
//
// Policy:
//   - Unreachable denotes "no path" off-diagonal; operands equal to
//     Unreachable are skipped, so no sentinel is ever summed.
//   - Loop order is fixed (k → i → j); only strict improvements are written.
//
// Complexity: Time O(n^3); extra space O(1).
func FloydWarshall(d *Distances) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	n := d.n
	data := d.data

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row offsets in the flat buffer
		ik, kj, cand int // d[i,k], d[k,j], d[i,k]+d[k,j]
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue // no path via k can improve row i
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
