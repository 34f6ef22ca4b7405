// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/matrix"
)

// Maximize returns the largest total value one agent standing at node with
// timeRemaining minutes can collect from remaining.
//
// Recurrence, for each source t in remaining:
//
//	cost = dist(node, t) + 1
//	skip t when cost >= timeRemaining or t is unreachable
//	cand = value(t)·(timeRemaining − cost) + Maximize(t, timeRemaining − cost, remaining \ {t})
//
// and the answer is the largest cand, or 0 when nothing is reachable in time.
//
// Behavior highlights:
//   - timeRemaining <= 0 or an empty set ⇒ 0.
//   - Bits outside Universe() and node rows out of range contribute nothing.
//   - A single remaining source is answered directly without recursion.
//   - Sources are tried in ascending bit order; the first maximum is kept.
//
// memo may be nil, in which case a throwaway Memo is used.
func (p *Problem) Maximize(memo *Memo, node, timeRemaining int, remaining bitset.Set) int {
	if node < 0 || node >= len(p.legs) {
		return 0
	}
	if memo == nil {
		memo = NewMemo()
	}
	memo.bind(p)

	return p.maximize(memo, node, timeRemaining, uint64(remaining.Intersect(p.universe)))
}

// maximize is the recursive core. set is already restricted to the universe.
// Recursion depth is bounded by the number of sources.
func (p *Problem) maximize(m *Memo, node, time int, set uint64) int {
	if time <= 0 || set == 0 {
		return 0
	}
	m.stats.Calls++
	legs := p.legs[node]

	// Single source left: no choice to make.
	if set&(set-1) == 0 {
		i := bits.TrailingZeros64(set)
		cost := legs[i]
		if cost == matrix.Unreachable || cost >= time {
			return 0
		}

		return p.values[i] * (time - cost)
	}

	cacheable := time <= MaxBudget
	var k uint64
	if cacheable {
		k = key(node, time, set)
		if v, ok := m.table[k]; ok {
			m.stats.Hits++
			return v
		}
	}
	m.stats.Expanded++

	var (
		best, cand, i, cost, left int
	)
	for rest := set; rest != 0; rest &= rest - 1 {
		i = bits.TrailingZeros64(rest)
		cost = legs[i]
		if cost == matrix.Unreachable || cost >= time {
			continue
		}
		left = time - cost
		cand = p.values[i]*left + p.maximize(m, p.srcRow[i], left, set&^(1<<uint(i)))
		if cand > best {
			best = cand
		}
	}

	if cacheable {
		m.table[k] = best
	}

	return best
}

// Best runs a fresh search from the start node over every source.
func (p *Problem) Best(budget int) (int, error) {
	if budget < 0 {
		return 0, fmt.Errorf("Best(%d): %w", budget, ErrBadBudget)
	}

	return p.Maximize(NewMemo(), p.start, budget, p.universe), nil
}

// MaximizeFrom is Maximize addressed by node ID and source IDs.
func (p *Problem) MaximizeFrom(memo *Memo, from string, timeRemaining int, sources ...string) (int, error) {
	if timeRemaining < 0 {
		return 0, fmt.Errorf("MaximizeFrom(%s, %d): %w", from, timeRemaining, ErrBadBudget)
	}
	row, err := p.NodeIndex(from)
	if err != nil {
		return 0, err
	}
	set, err := p.SetOf(sources...)
	if err != nil {
		return 0, err
	}

	return p.Maximize(memo, row, timeRemaining, set), nil
}
