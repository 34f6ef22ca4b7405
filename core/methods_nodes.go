// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Activatable() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Node catalog protected by muVert.
//   - Adjacency bootstrap under muEdge (lock order muVert -> muEdge).
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given value.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and non-negative value.
//   - Stage 2: Under muVert, register the node or compare with the existing one.
//   - Stage 3: Under muEdge, bootstrap an empty adjacency bucket.
//
// Behavior highlights:
//   - Idempotent for an identical (id, value) pair.
//   - Re-declaring an existing node with a different value is ErrDuplicateNode;
//     use SetValue to change a value on purpose.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id string, value int) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if value < 0 {
		return fmt.Errorf("AddNode(%s, %d): %w", id, value, ErrNegativeValue)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if n, exists := g.nodes[id]; exists {
		if n.Value != value {
			return fmt.Errorf("AddNode(%s): have %d, got %d: %w", id, n.Value, value, ErrDuplicateNode)
		}

		return nil
	}
	g.nodes[id] = &Node{ID: id, Value: value}

	g.muEdge.Lock()
	ensureBucket(g, id)
	g.muEdge.Unlock()

	return nil
}

// SetValue replaces the value of an existing node.
// Complexity: O(1).
func (g *Graph) SetValue(id string, value int) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if value < 0 {
		return fmt.Errorf("SetValue(%s, %d): %w", id, value, ErrNegativeValue)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("SetValue(%s): %w", id, ErrNodeNotFound)
	}
	n.Value = value

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%s): %w", id, ErrNodeNotFound)
	}

	return *n, nil
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// Activatable returns the IDs of nodes with a positive value, sorted ascending.
// The order is the one every search uses to assign bit indices.
// Complexity: O(V log V).
func (g *Graph) Activatable() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.Activatable() {
			ids = append(ids, id)
		}
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}

// ensureBucket creates the adjacency bucket for id. Caller holds muEdge.
func ensureBucket(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
