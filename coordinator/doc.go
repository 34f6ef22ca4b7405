// SPDX-License-Identifier: MIT

// Package coordinator splits the activatable sources of a search.Problem
// among several agents and sums their single-agent optima.
//
// Every assignment of sources to agents is a tuple of disjoint bitsets
// whose union is the problem's universe. Agents never interfere, so an
// assignment is worth the sum of search.Problem.Maximize over each agent's
// subset, and the coordinator keeps the best sum.
//
// Enumeration:
//   - Identical agents (same start, same budget): each unordered partition
//     is evaluated once. A partition is canonical when every non-empty
//     subset contains the lowest source not yet assigned to an earlier
//     agent; empty subsets trail. Two agents over k sources give 2^(k-1)
//     partitions.
//   - Heterogeneous agents: every ordered assignment, N^k for N agents.
//
// Concurrency:
//   - The first agent's choices are fed to an errgroup worker pool.
//   - Each worker owns one search.Memo per distinct (start, budget) agent
//     profile. Memo keys carry the full-universe mask, so a table stays
//     valid across every subset evaluated under that profile.
//   - Ties are broken by enumeration order, so the reported assignment does
//     not depend on scheduling.
//
// Cancellation:
//   - When ctx is cancelled or its deadline passes, the best value found
//     so far is returned with Result.Partial set and a nil error.
package coordinator
