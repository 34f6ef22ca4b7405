// SPDX-License-Identifier: MIT
// Package matrix_test verifies Build/FloydWarshall contracts:
//   - diagonal zero, unit edges, sentinel for unreachable pairs;
//   - triangle inequality over reachable pairs;
//   - agreement with an independent all-pairs oracle (gonum graph/path);
//   - deterministic, idempotent rebuilds.

package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/flowsearch/core"
	"github.com/katalvlaran/flowsearch/loader"
	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

const examplePath = "../testdata/example.txt"

func mustExample(t testing.TB) *core.Graph {
	t.Helper()
	g, err := loader.ParseFile(examplePath)
	require.NoError(t, err)

	return g
}

func TestBuild_Errors(t *testing.T) {
	_, err := matrix.Build(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.Build(core.NewGraph())
	require.ErrorIs(t, err, matrix.ErrEmptyGraph)

	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}

func TestBuild_Example(t *testing.T) {
	d, err := matrix.Build(mustExample(t))
	require.NoError(t, err)
	require.Equal(t, 10, d.Size())

	cases := []struct {
		from, to string
		want     int
	}{
		{"AA", "AA", 0},
		{"AA", "BB", 1},
		{"AA", "DD", 1},
		{"AA", "CC", 2},
		{"AA", "EE", 2},
		{"AA", "JJ", 2},
		{"AA", "HH", 5},
		{"JJ", "HH", 7},
		{"HH", "BB", 6},
	}
	for _, tc := range cases {
		got, err := d.Between(tc.from, tc.to)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s→%s", tc.from, tc.to)
	}

	_, err = d.Between("AA", "ZZ")
	require.ErrorIs(t, err, matrix.ErrUnknownNode)
	_, err = d.At(0, 10)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestBuild_Directed VERIFIES edges are one-way and missing paths keep the sentinel.
func TestBuild_Directed(t *testing.T) {
	g := core.NewGraph(core.WithAutoCreate())
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddNode("Z", 4)) // isolated

	d, err := matrix.Build(g)
	require.NoError(t, err)

	ac, _ := d.Between("A", "C")
	require.Equal(t, 2, ac)
	ca, _ := d.Between("C", "A")
	require.Equal(t, matrix.Unreachable, ca)
	require.False(t, d.Reachable("C", "A"))
	require.False(t, d.Reachable("A", "Z"))
	require.True(t, d.Reachable("Z", "Z"))
	require.False(t, d.Reachable("A", "nope"))
}

// TestBuild_Triangle VERIFIES d(a,a)=0 and d(a,b) <= d(a,k)+d(k,b) on reachable pairs.
func TestBuild_Triangle(t *testing.T) {
	d, err := matrix.Build(mustExample(t))
	require.NoError(t, err)

	rows := d.Rows()
	n := len(rows)
	for a := 0; a < n; a++ {
		require.Zero(t, rows[a][a])
		for b := 0; b < n; b++ {
			for k := 0; k < n; k++ {
				if rows[a][k] == matrix.Unreachable || rows[k][b] == matrix.Unreachable {
					continue
				}
				require.LessOrEqual(t, rows[a][b], rows[a][k]+rows[k][b])
			}
		}
	}
}

// TestBuild_MatchesGonum cross-checks every pair against gonum's Floyd–Warshall.
func TestBuild_MatchesGonum(t *testing.T) {
	g := mustExample(t)
	d, err := matrix.Build(g)
	require.NoError(t, err)

	ids := d.IDs()
	og := simple.NewDirectedGraph()
	for i := range ids {
		og.AddNode(simple.Node(i))
	}
	for i, from := range ids {
		nbs, err := g.Neighbors(from)
		require.NoError(t, err)
		for _, to := range nbs {
			j, err := d.IndexOf(to)
			require.NoError(t, err)
			og.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	oracle, ok := path.FloydWarshall(og)
	require.True(t, ok)

	for i := range ids {
		for j := range ids {
			want := oracle.Weight(int64(i), int64(j))
			got, err := d.At(i, j)
			require.NoError(t, err)
			if math.IsInf(want, 1) {
				require.Equal(t, matrix.Unreachable, got)
				continue
			}
			require.Equal(t, int(want), got, "%s→%s", ids[i], ids[j])
		}
	}
}

// TestBuild_Idempotent VERIFIES two builds over the same graph are identical.
func TestBuild_Idempotent(t *testing.T) {
	g := mustExample(t)
	a, err := matrix.Build(g)
	require.NoError(t, err)
	b, err := matrix.Build(g)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	if diff := cmp.Diff(a.Rows(), b.Rows()); diff != "" {
		t.Fatalf("rebuild mismatch (-first +second):\n%s", diff)
	}
	require.Equal(t, a.IDs(), b.IDs())
	require.False(t, a.Equal(nil))
}
