// SPDX-License-Identifier: MIT

// Package search implements the single-agent maximizer.
//
// One agent starts at a node with a time budget. Walking one edge costs one
// minute and activating a source costs one more; an activation with t
// minutes left afterwards is worth value·t. Each source is activated at
// most once. The package answers: what is the largest total an agent can
// collect from a given set of still-activatable sources?
//
// The recurrence is a memoised depth-first search over
// (node, timeRemaining, remainingSet). remainingSet is a bitset.Set over
// the problem's sources (bit i ⇔ Sources()[i]); node is a row of the
// matrix.Distances table. A Memo is an explicit context object owned by
// the caller of one search; nothing is cached on the Problem itself, so a
// Problem is safe for concurrent use as long as each goroutine brings its
// own Memo.
//
// Complexity: O(n · B · 2^k · k) in the worst case for n relevant nodes,
// budget B and k sources; in practice the reachable state space is far
// smaller because most (node, time) pairs never occur.
package search
