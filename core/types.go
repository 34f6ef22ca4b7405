// File: types.go
// Role: Node and Graph types, options, sentinel errors, constructor.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for nodes,
// muEdge for adjacency), so a graph may be filled from several goroutines.
// Lock order is always muVert -> muEdge.
//
// This file declares Node, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrNegativeValue  - node value below zero.
//	ErrDuplicateNode  - node re-declared with a different value.
//	ErrLoopNotAllowed - self-loop when loops are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeValue indicates a node value below zero.
	ErrNegativeValue = errors.New("core: node value is negative")

	// ErrDuplicateNode indicates a node was declared twice with different values.
	ErrDuplicateNode = errors.New("core: node already declared with another value")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node is a vertex of the valve network.
//
// Value is the per-minute gain once the node is activated; zero marks a
// plain connector that can be walked through but never activated.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Value is the non-negative activation value.
	Value int
}

// Activatable reports whether the node carries a positive value.
func (n Node) Activatable() bool { return n.Value > 0 }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithAutoCreate lets AddEdge register missing endpoints as zero-value nodes.
func WithAutoCreate() GraphOption {
	return func(g *Graph) { g.autoCreate = true }
}

// Graph is the in-memory valve network.
//
// Edges are directed and carry unit traversal cost; an undirected tunnel is
// stored as two directed edges. muVert protects nodes; muEdge protects
// adjacency and edgeCount.
type Graph struct {
	muVert sync.RWMutex // guards nodes
	muEdge sync.RWMutex // guards adjacency, edgeCount

	// Configuration flags
	allowLoops bool // allow self-loops
	autoCreate bool // AddEdge creates missing endpoints

	// Storage
	nodes     map[string]*Node               // node ID → Node
	adjacency map[string]map[string]struct{} // from → set(to)
	edgeCount int                            // number of directed edges
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected and AddEdge requires both endpoints to exist.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
