// SPDX-License-Identifier: MIT

// Package matrix builds the all-pairs shortest path table of a valve graph.
//
// Build walks core.Graph in sorted node order, writes 1 for every directed
// edge, then closes the table with Floyd–Warshall (k → i → j). Pairs without
// a path keep the Unreachable sentinel; consumers must compare against it
// before doing arithmetic.
//
// BuildBFS produces the identical table with one breadth-first walk per
// row, which is cheaper on large sparse networks.
//
// The resulting *Distances is immutable and can be shared by any number of
// concurrent searches.
package matrix
