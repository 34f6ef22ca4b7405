// SPDX-License-Identifier: MIT

// Package bitset provides Set, a fixed-width bitmask over at most 64
// activatable sources.
//
// Each source is assigned a stable index at load time (the position of its
// ID in core.Graph.Activatable()). Membership, union, difference and
// equality are single machine operations, and a Set is directly usable as
// (part of) a map key.
//
// Subset enumeration uses the classic submask walk
//
//	for s := u; ; s = (s - 1) & u { ...; if s == 0 { break } }
//
// which visits all 2^|u| submasks of u in descending numeric order.
package bitset
