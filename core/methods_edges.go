// File: methods_edges.go
// Role: Directed unit-cost edges between existing nodes.
//
// Determinism:
//   - Neighbors() returns IDs sorted ascending.
//
// Concurrency:
//   - Endpoint checks under muVert, adjacency writes under muEdge.
package core

import (
	"fmt"
	"sort"
)

// AddEdge adds a directed edge from→to with unit traversal cost.
//
// Implementation:
//   - Stage 1: Validate IDs and loop policy.
//   - Stage 2: Under muVert, ensure both endpoints exist (auto-create when enabled).
//   - Stage 3: Under muEdge, insert the edge; re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrEmptyNodeID, ErrLoopNotAllowed, ErrNodeNotFound (without WithAutoCreate).
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; ok {
			continue
		}
		if !g.autoCreate {
			return fmt.Errorf("AddEdge(%s→%s): endpoint %s: %w", from, to, id, ErrNodeNotFound)
		}
		g.nodes[id] = &Node{ID: id}
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	ensureBucket(g, from)
	ensureBucket(g, to)
	if _, dup := g.adjacency[from][to]; dup {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether a directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the sorted IDs reachable from id in one step.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrNodeNotFound)
	}

	g.muEdge.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	g.muEdge.RUnlock()

	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.edgeCount
}
