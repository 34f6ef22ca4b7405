// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Distances: dense n×n table of shortest edge counts between valve nodes.
//   - Row/column order equals core.Graph.Nodes() (sorted IDs), so two builds
//     over the same graph are byte-identical.

package matrix

import (
	"fmt"
	"math"
)

// Unreachable is the sentinel distance for pairs without a path.
// It exceeds every budget a search accepts, and the relaxation loop never
// adds two sentinels together, so it cannot overflow into a real value.
const Unreachable = math.MaxInt32

// Distances is the all-pairs shortest path table.
//
// Invariants after Build:
//   - At(i,i) == 0.
//   - At(i,j) <= At(i,k)+At(k,j) whenever both terms are finite.
//   - Immutable; safe for concurrent reads.
type Distances struct {
	n     int            // number of nodes
	data  []int          // row-major n*n
	ids   []string       // row → node ID
	index map[string]int // node ID → row
}

// newDistances allocates an n×n table with 0 on the diagonal and
// Unreachable elsewhere.
func newDistances(ids []string) *Distances {
	n := len(ids)
	d := &Distances{
		n:     n,
		data:  make([]int, n*n),
		ids:   append([]string(nil), ids...),
		index: make(map[string]int, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		d.index[ids[i]] = i
		for j = 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = Unreachable
			}
		}
	}

	return d
}

// Size returns the number of nodes (rows).
func (d *Distances) Size() int {
	if d == nil {
		return 0
	}

	return d.n
}

// IDs returns a copy of the row → node ID mapping.
func (d *Distances) IDs() []string {
	if d == nil {
		return nil
	}

	return append([]string(nil), d.ids...)
}

// IndexOf returns the row index of id.
func (d *Distances) IndexOf(id string) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	i, ok := d.index[id]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%s): %w", id, ErrUnknownNode)
	}

	return i, nil
}

// At returns the distance from row i to row j.
func (d *Distances) At(i, j int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("At(%d,%d) in %dx%d: %w", i, j, d.n, d.n, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Between returns the distance between two node IDs.
func (d *Distances) Between(from, to string) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	i, ok := d.index[from]
	if !ok {
		return 0, fmt.Errorf("Between(%s,%s): %s: %w", from, to, from, ErrUnknownNode)
	}
	j, ok := d.index[to]
	if !ok {
		return 0, fmt.Errorf("Between(%s,%s): %s: %w", from, to, to, ErrUnknownNode)
	}

	return d.data[i*d.n+j], nil
}

// Reachable reports whether a path from→to exists. Unknown IDs are unreachable.
func (d *Distances) Reachable(from, to string) bool {
	v, err := d.Between(from, to)

	return err == nil && v != Unreachable
}

// Equal reports whether both tables index the same nodes in the same order
// and hold identical distances.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	var i int
	for i = 0; i < d.n; i++ {
		if d.ids[i] != o.ids[i] {
			return false
		}
	}
	for i = range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Rows returns a copy of the table as a slice of rows.
func (d *Distances) Rows() [][]int {
	if d == nil {
		return nil
	}
	out := make([][]int, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = append([]int(nil), d.data[i*d.n:(i+1)*d.n]...)
	}

	return out
}
