// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/core"
	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/sirupsen/logrus"
)

// Problem is the immutable input of every search: sources, their values,
// and the leg cost from every node to every source.
type Problem struct {
	start    int            // row of the start node
	ids      []string       // row → node ID
	index    map[string]int // node ID → row
	sources  []string       // bit → source ID
	values   []int          // bit → value
	srcRow   []int          // bit → row
	legs     [][]int        // legs[row][bit] = dist+1, or matrix.Unreachable
	universe bitset.Set     // all sources
	log      *logrus.Logger // diagnostics
}

// NewProblem compiles g and its distance table into a Problem rooted at start.
//
// Implementation:
//   - Stage 1: Validate inputs and that dist indexes exactly g's nodes.
//   - Stage 2: Assign bit i to the i-th ID of g.Activatable() (sorted).
//   - Stage 3: Precompute leg costs (distance + 1 activation minute) from
//     every node to every source; unreachable legs keep matrix.Unreachable.
//
// Errors: ErrNilGraph, ErrNilDistances, ErrMismatchedDistances,
// ErrUnknownStart, ErrTooManySources, ErrTooManyNodes.
//
// Complexity: O(n·k) time and space for n nodes and k sources.
func NewProblem(g *core.Graph, dist *matrix.Distances, start string, opts ...Option) (*Problem, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if dist == nil {
		return nil, ErrNilDistances
	}
	ids := dist.IDs()
	if len(ids) != g.NodeCount() {
		return nil, fmt.Errorf("NewProblem: %d rows for %d nodes: %w", len(ids), g.NodeCount(), ErrMismatchedDistances)
	}
	if len(ids) > MaxNodes {
		return nil, fmt.Errorf("NewProblem: %d nodes > %d: %w", len(ids), MaxNodes, ErrTooManyNodes)
	}

	p := &Problem{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		log:   o.log,
	}
	for row, id := range ids {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("NewProblem: row %s: %w", id, ErrMismatchedDistances)
		}
		p.index[id] = row
	}

	row, ok := p.index[start]
	if !ok {
		return nil, fmt.Errorf("NewProblem(%q): %w", start, ErrUnknownStart)
	}
	p.start = row

	p.sources = g.Activatable()
	if len(p.sources) > o.maxSources {
		return nil, fmt.Errorf("NewProblem: %d sources > ceiling %d: %w", len(p.sources), o.maxSources, ErrTooManySources)
	}
	k := len(p.sources)
	p.values = make([]int, k)
	p.srcRow = make([]int, k)
	for i, id := range p.sources {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("NewProblem: %w", err)
		}
		p.values[i] = n.Value
		p.srcRow[i] = p.index[id]
	}
	p.universe = bitset.Full(k)

	p.legs = make([][]int, len(ids))
	for r := range ids {
		leg := make([]int, k)
		for i := 0; i < k; i++ {
			d, err := dist.At(r, p.srcRow[i])
			if err != nil {
				return nil, fmt.Errorf("NewProblem: %w", err)
			}
			if d == matrix.Unreachable {
				leg[i] = matrix.Unreachable
				continue
			}
			leg[i] = d + 1
		}
		p.legs[r] = leg
	}

	p.log.WithFields(logrus.Fields{
		"start":   start,
		"nodes":   len(ids),
		"sources": k,
	}).Debug("search: problem compiled")

	return p, nil
}

// Start returns the row index of the start node.
func (p *Problem) Start() int { return p.start }

// StartID returns the start node ID.
func (p *Problem) StartID() string { return p.ids[p.start] }

// Sources returns source IDs in bit order.
func (p *Problem) Sources() []string { return append([]string(nil), p.sources...) }

// Universe returns the set of all sources.
func (p *Problem) Universe() bitset.Set { return p.universe }

// Value returns the value of source bit i (0 when out of range).
func (p *Problem) Value(i int) int {
	if i < 0 || i >= len(p.values) {
		return 0
	}

	return p.values[i]
}

// NodeIndex returns the row of a node ID.
func (p *Problem) NodeIndex(id string) (int, error) {
	row, ok := p.index[id]
	if !ok {
		return 0, fmt.Errorf("NodeIndex(%q): %w", id, ErrUnknownStart)
	}

	return row, nil
}

// SetOf returns the set of the named sources.
func (p *Problem) SetOf(ids ...string) (bitset.Set, error) {
	var s bitset.Set
	for _, id := range ids {
		i := p.bitOf(id)
		if i < 0 {
			return bitset.Empty, fmt.Errorf("SetOf(%q): %w", id, ErrUnknownSource)
		}
		s = s.With(i)
	}

	return s, nil
}

// Names returns the source IDs of s in bit order.
func (p *Problem) Names(s bitset.Set) []string {
	out := make([]string, 0, s.Len())
	s.Intersect(p.universe).ForEach(func(i int) { out = append(out, p.sources[i]) })

	return out
}

func (p *Problem) bitOf(id string) int {
	row, ok := p.index[id]
	if !ok {
		return -1
	}
	for i, r := range p.srcRow {
		if r == row {
			return i
		}
	}

	return -1
}
