// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with operation
// context via %w); tests check them with errors.Is. Nothing here panics on
// user-triggered conditions.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Build.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrNilMatrix indicates that a nil *Distances receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownNode indicates a node ID missing from the index.
	ErrUnknownNode = errors.New("matrix: unknown node id")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
