// SPDX-License-Identifier: MIT

package coordinator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/metrics"
	"github.com/katalvlaran/flowsearch/search"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many assignments a worker evaluates between ctx checks.
const checkEvery = 256

// profile identifies agents that share memo tables.
type profile struct {
	row    int
	budget int
}

// MaximizeMultiAgent runs numAgents identical agents from the problem's
// start node, each with budgetPerAgent minutes.
func (c *Coordinator) MaximizeMultiAgent(ctx context.Context, numAgents, budgetPerAgent int) (Result, error) {
	if numAgents < 1 {
		return Result{}, fmt.Errorf("MaximizeMultiAgent(%d): %w", numAgents, ErrNoAgents)
	}
	agents := make([]Agent, numAgents)
	for i := range agents {
		agents[i] = Agent{Start: c.problem.StartID(), Budget: budgetPerAgent}
	}

	return c.Maximize(ctx, agents)
}

// Maximize finds the best assignment of sources to agents.
//
// Implementation:
//   - Stage 1: Validate agents and resolve start rows.
//   - Stage 2: Choose canonical (identical agents) or ordered enumeration.
//   - Stage 3: Feed the first agent's subsets to workers; each worker
//     enumerates the remaining agents depth-first.
//   - Stage 4: Merge worker bests by (value, job order) and report.
//
// Errors:
//   - ErrNoAgents, ErrBadBudget, search.ErrUnknownStart.
func (c *Coordinator) Maximize(ctx context.Context, agents []Agent) (Result, error) {
	if len(agents) == 0 {
		return Result{}, ErrNoAgents
	}
	profiles := make([]profile, len(agents))
	for i, a := range agents {
		if a.Budget < 0 {
			return Result{}, fmt.Errorf("Maximize: agent %d budget %d: %w", i, a.Budget, ErrBadBudget)
		}
		row, err := c.problem.NodeIndex(a.Start)
		if err != nil {
			return Result{}, fmt.Errorf("Maximize: agent %d: %w", i, err)
		}
		profiles[i] = profile{row: row, budget: a.Budget}
	}

	r := &run{
		c:         c,
		profiles:  profiles,
		universe:  c.problem.Universe(),
		canonical: identical(profiles),
	}
	res := Result{
		RunID:      uuid.New().String(),
		Assignment: make([]bitset.Set, len(agents)),
		Values:     make([]int, len(agents)),
	}
	log := c.log.WithFields(logrus.Fields{
		"run_id":    res.RunID,
		"agents":    len(agents),
		"sources":   r.universe.Len(),
		"canonical": r.canonical,
	})

	if r.universe.IsEmpty() {
		log.Debug("coordinator: no activatable sources")
		return res, nil
	}

	started := time.Now()
	log.WithField("workers", c.workers).Info("coordinator: run started")

	best, partial := r.execute(ctx)

	res.Partitions = r.partitions.Load()
	res.Partial = partial
	if best.valid {
		res.Value = best.value
		copy(res.Assignment, best.assign)
		copy(res.Values, best.values)
	}

	elapsed := time.Since(started)
	if c.metrics != nil {
		c.metrics.AddWork(r.expanded.Load(), r.hits.Load(), res.Partitions)
		c.metrics.ObserveSolve(metrics.ModeMulti, elapsed, partial)
	}
	entry := log.WithFields(logrus.Fields{
		"value":      res.Value,
		"partitions": res.Partitions,
		"partial":    res.Partial,
		"elapsed":    elapsed,
	})
	if partial {
		entry.Warn("coordinator: run stopped early, result is a lower bound")
	} else {
		entry.Info("coordinator: run finished")
	}

	return res, nil
}

// identical reports whether every agent shares one profile.
func identical(ps []profile) bool {
	for _, p := range ps[1:] {
		if p != ps[0] {
			return false
		}
	}

	return true
}

// run is the state of one Maximize call.
type run struct {
	c         *Coordinator
	profiles  []profile
	universe  bitset.Set
	canonical bool

	partitions atomic.Int64
	expanded   atomic.Int64
	hits       atomic.Int64
	aborted    atomic.Bool
}

// candidate is a worker's best assignment. order is the job index, used to
// break ties the same way a sequential run would.
type candidate struct {
	valid  bool
	value  int
	order  int
	assign []bitset.Set
	values []int
}

func (a candidate) beats(b candidate) bool {
	if !b.valid {
		return a.valid
	}
	if !a.valid {
		return false
	}
	if a.value != b.value {
		return a.value > b.value
	}

	return a.order < b.order
}

type job struct {
	order int
	first bitset.Set
}

// execute fans the first agent's choices out to the worker pool.
func (r *run) execute(ctx context.Context) (candidate, bool) {
	jobs := make(chan job, r.c.workers)
	var (
		mu      sync.Mutex
		overall candidate
	)

	g := new(errgroup.Group)
	for w := 0; w < r.c.workers; w++ {
		g.Go(func() error {
			wk := newWorker(r)
			for j := range jobs {
				if ctx.Err() != nil {
					r.aborted.Store(true)
					continue
				}
				wk.evaluate(ctx, j)
			}
			wk.flush()

			mu.Lock()
			if wk.best.beats(overall) {
				overall = wk.best
			}
			mu.Unlock()

			return nil
		})
	}

	order := 0
	r.firstChoices(func(s bitset.Set) bool {
		select {
		case jobs <- job{order: order, first: s}:
			order++
			return true
		case <-ctx.Done():
			r.aborted.Store(true)
			return false
		}
	})
	close(jobs)
	_ = g.Wait() // workers never fail

	return overall, r.aborted.Load()
}

// firstChoices yields the subsets the first agent may take.
func (r *run) firstChoices(yield func(bitset.Set) bool) {
	r.choices(r.universe, len(r.profiles) == 1, yield)
}

// choices yields the subsets an agent may take from left. last agents take
// everything that is left.
func (r *run) choices(left bitset.Set, last bool, yield func(bitset.Set) bool) {
	switch {
	case last:
		yield(left)
	case r.canonical:
		if left.IsEmpty() {
			yield(bitset.Empty)
			return
		}
		low := left.Lowest()
		bitset.SubsetsOf(left.Without(low), func(s bitset.Set) bool {
			return yield(s.With(low))
		})
	default:
		bitset.SubsetsOf(left, yield)
	}
}

// worker evaluates jobs with private memo tables.
type worker struct {
	r      *run
	memos  map[profile]*search.Memo
	cache  map[profile]map[bitset.Set]int
	assign []bitset.Set
	values []int
	best   candidate
	order  int
	seen   int64
	stop   bool
}

func newWorker(r *run) *worker {
	return &worker{
		r:      r,
		memos:  make(map[profile]*search.Memo),
		cache:  make(map[profile]map[bitset.Set]int),
		assign: make([]bitset.Set, len(r.profiles)),
		values: make([]int, len(r.profiles)),
	}
}

// value is the single-agent optimum for an agent of profile p over s.
func (w *worker) value(p profile, s bitset.Set) int {
	byset, ok := w.cache[p]
	if !ok {
		byset = make(map[bitset.Set]int)
		w.cache[p] = byset
	}
	if v, ok := byset[s]; ok {
		return v
	}
	memo, ok := w.memos[p]
	if !ok {
		memo = search.NewMemo()
		w.memos[p] = memo
	}
	v := w.r.c.problem.Maximize(memo, p.row, p.budget, s)
	byset[s] = v

	return v
}

func (w *worker) evaluate(ctx context.Context, j job) {
	w.order = j.order
	w.stop = false
	w.assign[0] = j.first
	w.values[0] = w.value(w.r.profiles[0], j.first)
	w.descend(ctx, 1, w.r.universe.Difference(j.first), w.values[0])
}

// descend assigns agents k.. from left. sum is the total of agents 0..k-1.
func (w *worker) descend(ctx context.Context, k int, left bitset.Set, sum int) {
	n := len(w.r.profiles)
	if k == n {
		w.record(ctx, sum)
		return
	}
	p := w.r.profiles[k]
	w.r.choices(left, k == n-1, func(s bitset.Set) bool {
		v := w.value(p, s)
		w.assign[k] = s
		w.values[k] = v
		w.descend(ctx, k+1, left.Difference(s), sum+v)

		return !w.stop
	})
}

func (w *worker) record(ctx context.Context, sum int) {
	w.seen++
	if w.seen%checkEvery == 0 && ctx.Err() != nil {
		w.stop = true
		w.r.aborted.Store(true)
	}
	cand := candidate{valid: true, value: sum, order: w.order}
	if !cand.beats(w.best) {
		return
	}
	cand.assign = append([]bitset.Set(nil), w.assign...)
	cand.values = append([]int(nil), w.values...)
	w.best = cand
}

// flush publishes the worker's counters.
func (w *worker) flush() {
	w.r.partitions.Add(w.seen)
	for _, m := range w.memos {
		st := m.Stats()
		w.r.expanded.Add(st.Expanded)
		w.r.hits.Add(st.Hits)
	}
}
