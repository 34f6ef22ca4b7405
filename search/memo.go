// SPDX-License-Identifier: MIT

package search

// Memo is the per-search context: the table of (state → best value) plus
// counters. A Memo belongs to one Problem; handing it to another Problem
// resets it. It is not safe for concurrent use.
type Memo struct {
	owner *Problem
	table map[uint64]int
	stats Stats
}

// Stats counts work done through one Memo.
type Stats struct {
	// Calls is the number of non-terminal states visited.
	Calls int64

	// Hits is the number of states answered from the table.
	Hits int64

	// Expanded is the number of states whose successors were enumerated.
	Expanded int64
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{table: make(map[uint64]int)}
}

// Len returns the number of cached states.
func (m *Memo) Len() int { return len(m.table) }

// Stats returns the counters accumulated since the last Reset.
func (m *Memo) Stats() Stats { return m.stats }

// Reset drops every cached state and zeroes the counters.
func (m *Memo) Reset() {
	clear(m.table)
	m.stats = Stats{}
	m.owner = nil
}

// bind attaches m to p, resetting it if it was used with another Problem.
func (m *Memo) bind(p *Problem) {
	if m.owner != p {
		m.Reset()
		m.owner = p
	}
}

// key packs a state. Callers guarantee time <= MaxBudget.
func key(node, time int, set uint64) uint64 {
	return uint64(node)<<52 | uint64(time)<<32 | set
}
