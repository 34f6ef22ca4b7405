package core

// Clone returns a deep copy of the graph: options, nodes, and adjacency.
//
// Implementation:
//   - Stage 1: Copy node records under muVert.RLock.
//   - Stage 2: Copy adjacency buckets under muEdge.RLock.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		allowLoops: g.allowLoops,
		autoCreate: g.autoCreate,
	}

	g.muVert.RLock()
	out.nodes = make(map[string]*Node, len(g.nodes))
	for id, n := range g.nodes {
		cp := *n
		out.nodes[id] = &cp
	}

	g.muEdge.RLock()
	out.adjacency = make(map[string]map[string]struct{}, len(g.adjacency))
	for from, bucket := range g.adjacency {
		nb := make(map[string]struct{}, len(bucket))
		for to := range bucket {
			nb[to] = struct{}{}
		}
		out.adjacency[from] = nb
	}
	out.edgeCount = g.edgeCount
	g.muEdge.RUnlock()
	g.muVert.RUnlock()

	return out
}
