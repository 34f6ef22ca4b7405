// SPDX-License-Identifier: MIT

package search

import (
	"math/bits"

	"github.com/katalvlaran/flowsearch/bitset"
	"github.com/katalvlaran/flowsearch/matrix"
)

// Plan reconstructs one optimal activation order for an agent at node with
// budget minutes over remaining.
//
// Implementation:
//   - Stage 1: Solve the state with Maximize (warming memo).
//   - Stage 2: Walk forward: at each state pick the first source (ascending
//     bit) whose immediate gain plus the memoised tail equals the state's value.
//
// The walk only re-enters already cached states, so after Stage 1 it costs
// O(k^2) lookups for k sources.
func (p *Problem) Plan(memo *Memo, node, budget int, remaining bitset.Set) Plan {
	if memo == nil {
		memo = NewMemo()
	}
	total := p.Maximize(memo, node, budget, remaining)
	plan := Plan{Value: total}
	if total == 0 {
		return plan
	}

	var (
		set    = uint64(remaining.Intersect(p.universe))
		time   = budget
		target = total
	)
	for target > 0 && set != 0 && time > 0 {
		legs := p.legs[node]
		picked := -1
		for rest := set; rest != 0; rest &= rest - 1 {
			i := bits.TrailingZeros64(rest)
			cost := legs[i]
			if cost == matrix.Unreachable || cost >= time {
				continue
			}
			left := time - cost
			gain := p.values[i] * left
			next := set &^ (1 << uint(i))
			if gain+p.maximize(memo, p.srcRow[i], left, next) == target {
				plan.Steps = append(plan.Steps, Activation{
					Node:      p.sources[i],
					Minute:    budget - left,
					Remaining: left,
					Gain:      gain,
				})
				node, time, set, target = p.srcRow[i], left, next, target-gain
				picked = i
				break
			}
		}
		if picked < 0 {
			break // unreachable when the memo is consistent
		}
	}

	return plan
}
