// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle rules and sentinel errors.
//   - Anchor deterministic ordering of Nodes/Activatable/Neighbors.

package core_test

import (
	"testing"

	"github.com/katalvlaran/flowsearch/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddNode VERIFIES AddNode validation and idempotency.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	// Empty ID and negative value are rejected.
	require.ErrorIs(t, g.AddNode("", 1), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddNode("AA", -1), core.ErrNegativeValue)

	// First insert succeeds; identical re-insert is a no-op.
	require.NoError(t, g.AddNode("AA", 0))
	require.NoError(t, g.AddNode("AA", 0))
	require.Equal(t, 1, g.NodeCount())

	// Conflicting re-declaration is a duplicate.
	require.ErrorIs(t, g.AddNode("AA", 5), core.ErrDuplicateNode)

	n, err := g.Node("AA")
	require.NoError(t, err)
	require.Equal(t, core.Node{ID: "AA", Value: 0}, n)
	require.False(t, n.Activatable())
}

// TestGraph_SetValue VERIFIES value updates on existing nodes only.
func TestGraph_SetValue(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetValue("BB", 3), core.ErrNodeNotFound)
	require.NoError(t, g.AddNode("BB", 0))
	require.NoError(t, g.SetValue("BB", 13))
	require.ErrorIs(t, g.SetValue("BB", -2), core.ErrNegativeValue)

	n, err := g.Node("BB")
	require.NoError(t, err)
	require.Equal(t, 13, n.Value)
	require.True(t, n.Activatable())
}

// TestGraph_AddEdge VERIFIES endpoint and loop policies.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("AA", 0))

	require.ErrorIs(t, g.AddEdge("AA", "BB"), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge("AA", "AA"), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge("", "AA"), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode("BB", 13))
	require.NoError(t, g.AddEdge("AA", "BB"))
	require.NoError(t, g.AddEdge("AA", "BB")) // duplicate is a no-op
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge("AA", "BB"))
	require.False(t, g.HasEdge("BB", "AA"), "edges are directed")
}

// TestGraph_AutoCreateAndLoops VERIFIES the optional construction flags.
func TestGraph_AutoCreateAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithAutoCreate(), core.WithLoops())
	require.NoError(t, g.AddEdge("AA", "ZZ"))
	require.NoError(t, g.AddEdge("ZZ", "ZZ"))
	require.Equal(t, []string{"AA", "ZZ"}, g.Nodes())
	require.Equal(t, 2, g.EdgeCount())

	n, err := g.Node("ZZ")
	require.NoError(t, err)
	require.Zero(t, n.Value)
}

// TestGraph_Ordering VERIFIES sorted enumeration surfaces.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph(core.WithAutoCreate())
	for _, id := range []string{"DD", "AA", "CC", "BB"} {
		require.NoError(t, g.AddNode(id, 0))
	}
	require.NoError(t, g.SetValue("DD", 20))
	require.NoError(t, g.SetValue("BB", 13))
	require.NoError(t, g.AddEdge("AA", "DD"))
	require.NoError(t, g.AddEdge("AA", "BB"))
	require.NoError(t, g.AddEdge("AA", "CC"))

	require.Equal(t, []string{"AA", "BB", "CC", "DD"}, g.Nodes())
	require.Equal(t, []string{"BB", "DD"}, g.Activatable())

	nbs, err := g.Neighbors("AA")
	require.NoError(t, err)
	require.Equal(t, []string{"BB", "CC", "DD"}, nbs)

	_, err = g.Neighbors("QQ")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_Clone VERIFIES the clone is deep: later mutations do not leak.
func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("AA", 0))
	require.NoError(t, g.AddNode("BB", 13))
	require.NoError(t, g.AddEdge("AA", "BB"))

	cp := g.Clone()
	require.NoError(t, g.SetValue("BB", 1))
	require.NoError(t, g.AddEdge("BB", "AA"))

	n, err := cp.Node("BB")
	require.NoError(t, err)
	require.Equal(t, 13, n.Value)
	require.Equal(t, 1, cp.EdgeCount())
	require.False(t, cp.HasEdge("BB", "AA"))
}
