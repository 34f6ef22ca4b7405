// Package search_test provides shared fixtures and a brute-force oracle.
package search_test

import (
	"testing"

	"github.com/katalvlaran/flowsearch/builder"
	"github.com/katalvlaran/flowsearch/core"
	"github.com/katalvlaran/flowsearch/loader"
	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/katalvlaran/flowsearch/search"
	"github.com/stretchr/testify/require"
)

const examplePath = "../testdata/example.txt"

// fixture bundles a graph, its distances and a compiled problem.
type fixture struct {
	g *core.Graph
	d *matrix.Distances
	p *search.Problem
}

func newFixture(t testing.TB, g *core.Graph, start string, opts ...search.Option) fixture {
	t.Helper()
	d, err := matrix.Build(g)
	require.NoError(t, err)
	p, err := search.NewProblem(g, d, start, opts...)
	require.NoError(t, err)

	return fixture{g: g, d: d, p: p}
}

func exampleFixture(t testing.TB) fixture {
	t.Helper()
	g, err := loader.ParseFile(examplePath)
	require.NoError(t, err)

	return newFixture(t, g, "AA")
}

// randomFixture builds a small, possibly disconnected network.
func randomFixture(t testing.TB, seed int64) fixture {
	t.Helper()
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithSeed(seed)},
		builder.RandomSparse(10, 0.25),
		builder.Values(0.6, 20),
	)
	require.NoError(t, err)

	return newFixture(t, g, "AA")
}

// bruteForce tries every activation order without memoisation.
func bruteForce(f fixture, at string, time int, left []string) int {
	best := 0
	for i, s := range left {
		dist, _ := f.d.Between(at, s)
		if dist == matrix.Unreachable {
			continue
		}
		cost := dist + 1
		if cost >= time {
			continue
		}
		n, _ := f.g.Node(s)
		rest := make([]string, 0, len(left)-1)
		rest = append(rest, left[:i]...)
		rest = append(rest, left[i+1:]...)
		if v := n.Value*(time-cost) + bruteForce(f, s, time-cost, rest); v > best {
			best = v
		}
	}

	return best
}
