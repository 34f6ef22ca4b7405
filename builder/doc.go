// SPDX-License-Identifier: MIT

// Package builder generates deterministic valve networks for tests,
// benchmarks and the CLI's generate command.
//
// Topology constructors (Ring, Grid, RandomSparse) add nodes and tunnels;
// Values turns a random subset of nodes into sources. Compose them with
// Build:
//
//	g, err := builder.Build(nil,
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Grid(4, 4),
//		builder.Values(0.4, 25),
//	)
//
// The same seed, options and constructor order always produce the same graph.
package builder
