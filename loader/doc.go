// SPDX-License-Identifier: MIT

// Package loader turns the textual valve description into a core.Graph.
//
// One record per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines and lines starting with '#' are ignored. Every edge target
// must be declared by its own record somewhere in the input; edges are
// directed exactly as written. Format writes the canonical form back, so
// Parse(Format(g)) reproduces g.
package loader
