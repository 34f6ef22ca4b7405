// SPDX-License-Identifier: MIT
// Package coordinator_test verifies multi-agent partitioning:
//   - canonical example (two agents, 26 minutes ⇒ 1707);
//   - partition counts for canonical and ordered enumeration;
//   - dominance over a single agent with the same budget;
//   - heterogeneous agents against a sequential oracle;
//   - worker-count independence, cancellation, metrics.

package coordinator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/builder"
	"github.com/katalvlaran/flowsearch/coordinator"
	"github.com/katalvlaran/flowsearch/core"
	"github.com/katalvlaran/flowsearch/loader"
	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/katalvlaran/flowsearch/metrics"
	"github.com/katalvlaran/flowsearch/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func compile(t testing.TB, g *core.Graph) *search.Problem {
	t.Helper()
	d, err := matrix.Build(g)
	require.NoError(t, err)
	p, err := search.NewProblem(g, d, "AA")
	require.NoError(t, err)

	return p
}

func exampleProblem(t testing.TB) *search.Problem {
	t.Helper()
	g, err := loader.ParseFile("../testdata/example.txt")
	require.NoError(t, err)

	return compile(t, g)
}

func newCoordinator(t testing.TB, p *search.Problem, opts ...coordinator.Option) *coordinator.Coordinator {
	t.Helper()
	c, err := coordinator.New(p, opts...)
	require.NoError(t, err)

	return c
}

func TestMaximizeMultiAgent_Example(t *testing.T) {
	p := exampleProblem(t)
	c := newCoordinator(t, p, coordinator.WithWorkers(4))

	res, err := c.MaximizeMultiAgent(context.Background(), 2, 26)
	require.NoError(t, err)
	require.Equal(t, 1707, res.Value)
	require.False(t, res.Partial)
	require.NotEmpty(t, res.RunID)
	require.EqualValues(t, 32, res.Partitions, "2^(6-1) unordered pairs")

	require.Len(t, res.Assignment, 2)
	require.Equal(t, []string{"BB", "CC", "JJ"}, p.Names(res.Assignment[0]))
	require.Equal(t, []string{"DD", "EE", "HH"}, p.Names(res.Assignment[1]))
	require.Equal(t, []int{764, 943}, res.Values)
	require.Equal(t, p.Universe(), res.Assignment[0].Union(res.Assignment[1]))
}

func TestMaximizeMultiAgent_SingleAgentMatchesSearch(t *testing.T) {
	p := exampleProblem(t)
	c := newCoordinator(t, p)

	res, err := c.MaximizeMultiAgent(context.Background(), 1, 30)
	require.NoError(t, err)
	require.Equal(t, 1651, res.Value)
	require.EqualValues(t, 1, res.Partitions)
	require.Equal(t, p.Universe(), res.Assignment[0])
}

func TestMaximizeMultiAgent_Dominance(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(12, 0.2),
			builder.Values(0.5, 25),
		)
		require.NoError(t, err)
		p := compile(t, g)
		c := newCoordinator(t, p, coordinator.WithWorkers(3))

		for _, budget := range []int{0, 8, 20} {
			one, err := p.Best(budget)
			require.NoError(t, err)
			two, err := c.MaximizeMultiAgent(context.Background(), 2, budget)
			require.NoError(t, err)
			require.GreaterOrEqual(t, two.Value, one, "seed %d budget %d", seed, budget)
		}
	}
}

func TestMaximizeMultiAgent_ThreeAgents(t *testing.T) {
	p := exampleProblem(t)
	c := newCoordinator(t, p, coordinator.WithWorkers(2))

	res, err := c.MaximizeMultiAgent(context.Background(), 3, 26)
	require.NoError(t, err)
	require.Equal(t, 1794, res.Value)
	require.EqualValues(t, 1+31+90, res.Partitions, "partitions of 6 into at most 3 blocks")

	var union bitset.Set
	for i, s := range res.Assignment {
		require.True(t, union.Intersect(s).IsEmpty(), "agent %d overlaps", i)
		union = union.Union(s)
	}
	require.Equal(t, p.Universe(), union)
}

func TestMaximize_Heterogeneous(t *testing.T) {
	p := exampleProblem(t)
	c := newCoordinator(t, p, coordinator.WithWorkers(4))
	agents := []coordinator.Agent{{Start: "AA", Budget: 26}, {Start: "DD", Budget: 26}}

	res, err := c.Maximize(context.Background(), agents)
	require.NoError(t, err)
	require.Equal(t, 1752, res.Value)
	require.EqualValues(t, 64, res.Partitions, "every ordered pair")
	require.Equal(t, oracle(t, p, agents), res.Value)
}

func TestMaximize_HeterogeneousDegenerates(t *testing.T) {
	p := exampleProblem(t)
	c := newCoordinator(t, p)

	res, err := c.Maximize(context.Background(), []coordinator.Agent{{Start: "AA", Budget: 0}, {Start: "AA", Budget: 30}})
	require.NoError(t, err)
	require.Equal(t, 1651, res.Value)
	require.Equal(t, []int{0, 1651}, res.Values)
}

func TestMaximize_HeterogeneousRandom(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(seed)},
			builder.Grid(4, 3),
			builder.Values(0.5, 20),
		)
		require.NoError(t, err)
		p := compile(t, g)
		ids := g.Nodes()
		agents := []coordinator.Agent{{Start: "AA", Budget: 12}, {Start: ids[len(ids)-1], Budget: 9}}

		res, err := newCoordinator(t, p, coordinator.WithWorkers(3)).Maximize(context.Background(), agents)
		require.NoError(t, err)
		require.Equal(t, oracle(t, p, agents), res.Value, "seed %d", seed)
	}
}

func TestMaximize_WorkerCountIndependent(t *testing.T) {
	g, err := builder.Build(nil, []builder.Option{builder.WithSeed(7)}, builder.Grid(4, 4), builder.Values(0.6, 30))
	require.NoError(t, err)
	p := compile(t, g)

	want, err := newCoordinator(t, p, coordinator.WithWorkers(1)).MaximizeMultiAgent(context.Background(), 2, 15)
	require.NoError(t, err)
	for _, w := range []int{2, 5, 16} {
		got, err := newCoordinator(t, p, coordinator.WithWorkers(w)).MaximizeMultiAgent(context.Background(), 2, 15)
		require.NoError(t, err)
		require.Equal(t, want.Value, got.Value, "workers %d", w)
		require.Equal(t, want.Assignment, got.Assignment, "workers %d", w)
		require.Equal(t, want.Partitions, got.Partitions, "workers %d", w)
	}
}

func TestMaximize_NoSources(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Ring(5))
	require.NoError(t, err)
	c := newCoordinator(t, compile(t, g))

	res, err := c.MaximizeMultiAgent(context.Background(), 2, 26)
	require.NoError(t, err)
	require.Zero(t, res.Value)
	require.Zero(t, res.Partitions)
	require.False(t, res.Partial)
}

func TestMaximize_Cancelled(t *testing.T) {
	p := exampleProblem(t)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	c := newCoordinator(t, p, coordinator.WithMetrics(m))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := c.MaximizeMultiAgent(ctx, 2, 26)
	require.NoError(t, err)
	require.True(t, res.Partial)
	require.LessOrEqual(t, res.Value, 1707)
	require.Equal(t, 1.0, testutil.ToFloat64(m.AbortedRuns))
}

func TestMaximize_Errors(t *testing.T) {
	_, err := coordinator.New(nil)
	require.ErrorIs(t, err, coordinator.ErrNilProblem)

	c := newCoordinator(t, exampleProblem(t))
	ctx := context.Background()

	_, err = c.MaximizeMultiAgent(ctx, 0, 26)
	require.ErrorIs(t, err, coordinator.ErrNoAgents)

	_, err = c.Maximize(ctx, nil)
	require.ErrorIs(t, err, coordinator.ErrNoAgents)

	_, err = c.MaximizeMultiAgent(ctx, 2, -1)
	require.ErrorIs(t, err, coordinator.ErrBadBudget)

	_, err = c.Maximize(ctx, []coordinator.Agent{{Start: "AA", Budget: 5}, {Start: "ZZ", Budget: 5}})
	require.ErrorIs(t, err, search.ErrUnknownStart)
}

func TestMaximize_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	c := newCoordinator(t, exampleProblem(t), coordinator.WithMetrics(m), coordinator.WithWorkers(2))

	_, err := c.MaximizeMultiAgent(context.Background(), 2, 26)
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(metrics.ModeMulti)))
	require.Equal(t, 32.0, testutil.ToFloat64(m.PartitionsEvaluated))
	require.Zero(t, testutil.ToFloat64(m.AbortedRuns))
	require.Positive(t, testutil.ToFloat64(m.StatesExpanded))
}

// oracle evaluates every ordered assignment sequentially with fresh memos.
func oracle(t *testing.T, p *search.Problem, agents []coordinator.Agent) int {
	t.Helper()
	var rec func(k int, left bitset.Set) int
	rec = func(k int, left bitset.Set) int {
		if k == len(agents)-1 {
			v, err := p.MaximizeFrom(nil, agents[k].Start, agents[k].Budget, p.Names(left)...)
			require.NoError(t, err)
			return v
		}
		best := 0
		bitset.SubsetsOf(left, func(s bitset.Set) bool {
			v, err := p.MaximizeFrom(nil, agents[k].Start, agents[k].Budget, p.Names(s)...)
			require.NoError(t, err)
			if total := v + rec(k+1, left.Difference(s)); total > best {
				best = total
			}
			return true
		})

		return best
	}

	return rec(0, p.Universe())
}
