// SPDX-License-Identifier: MIT

// Package core holds the valve network that every search runs over.
//
// A Graph is a set of Nodes, each with a non-negative Value, joined by
// directed edges of unit cost. Nodes with Value > 0 are "activatable";
// all others only connect. The package is deliberately small: it does not
// compute distances (see package matrix) and it does not search (see
// packages search and coordinator).
//
// Concurrency: all methods are safe for concurrent use. Enumeration
// methods (Nodes, Activatable, Neighbors) always return sorted IDs so
// downstream index assignment is deterministic.
package core
