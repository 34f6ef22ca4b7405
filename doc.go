// Package flowsearch plans valve activations over a tunnel network.
//
// 🚀 What is flowsearch?
//
//	Agents walk a graph of valves with unit-cost tunnels. Opening a valve
//	costs a minute and then releases its value every remaining minute.
//	flowsearch finds the largest total release within a time budget:
//		• for one agent (memoised search over bitmask states)
//		• for several agents that split the valves between them
//
// ✨ Why flowsearch?
//
//   - Exact: every state is explored or answered from a memo table
//   - Deterministic: sorted node order, first maximum wins, stable splits
//   - Parallel where it pays: partitions fan out to a worker pool
//   - Bounded: deadline-aware runs report the best split found so far
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - thread-safe valve Graph: nodes with values, directed tunnels
//	loader/      - "Valve AA has flow rate=0; tunnels lead to valves DD, II" parser/formatter
//	matrix/      - all-pairs distances: Floyd–Warshall or per-row BFS
//	bitset/      - uint64 source sets and submask enumeration
//	search/      - single-agent maximizer, memo tables, plan reconstruction
//	coordinator/ - multi-agent partitioning over an errgroup worker pool
//	builder/     - seeded synthetic networks: ring, grid, random
//	config/      - YAML + FLOWSEARCH_* settings, logrus setup
//	metrics/     - Prometheus counters and histograms
//	cmd/flowsearch - solve, distances, generate
//
// Quick ASCII example:
//
//	    AA(0)───BB(13)───CC(2)
//	      │
//	    DD(20)
//
//	one agent from AA with 30 minutes opens DD first (worth 20·28).
//
//	go install github.com/katalvlaran/flowsearch/cmd/flowsearch@latest
package flowsearch
