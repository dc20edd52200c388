package algo

import "github.com/elektrokombinacija/mapf-grid/internal/core"

// Optimizer exhaustively tries every permutation of agent planning
// order and keeps the cheapest valid outcome. Cost of a trial is the
// summed committed path length over all agents. This is O(n!) full
// planning passes; it guarantees the best achievable prioritized
// order and is explicitly impractical beyond a small agent count.
type Optimizer struct {
	Opts SearchOptions
}

// NewOptimizer creates an ordering optimizer.
func NewOptimizer(opts SearchOptions) *Optimizer {
	return &Optimizer{Opts: opts}
}

func (o *Optimizer) Name() string { return "OrderingOptimizer" }

// Stats reports optimizer work for one Solve call.
type Stats struct {
	Trials int // orderings evaluated; always n! for n agents
	Valid  int // trials where every agent found a path
}

// SolveStats enumerates every permutation of agent order starting from
// the identity sequence, runs the prioritized planner once per
// permutation with a fresh reservation table, and returns the cheapest
// valid solution. Comparison is strictly less-than, so the
// first-generated ordering wins ties. The shared penalty grid in Opts
// is read but never reset or mutated inside the loop.
func (o *Optimizer) SolveStats(inst *core.Instance) (*core.Solution, Stats, error) {
	ids := make(core.Ordering, len(inst.Agents))
	for i, a := range inst.Agents {
		ids[i] = a.ID
	}

	planner := &Prioritized{Opts: o.Opts}
	var best *core.Solution
	var stats Stats

	forEachPermutation(ids, func(order core.Ordering) {
		stats.Trials++
		sol := planner.PlanOrdered(inst, order, NewReservationTable())
		if !sol.Valid {
			return
		}
		stats.Valid++
		if best == nil || sol.TotalCost < best.TotalCost {
			best = sol
		}
	})

	if best == nil {
		return nil, stats, ErrNoValidOrdering
	}
	return best, stats, nil
}

// Solve implements Solver.
func (o *Optimizer) Solve(inst *core.Instance) (*core.Solution, error) {
	sol, _, err := o.SolveStats(inst)
	return sol, err
}

// forEachPermutation visits every permutation of ids, permuting the
// index sequence lexicographically starting from the identity, so the
// first ordering visited is always ids as given. The slice passed to
// visit is reused between calls; visitors must copy what they keep.
func forEachPermutation(ids core.Ordering, visit func(core.Ordering)) {
	n := len(ids)
	if n == 0 {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	order := make(core.Ordering, n)
	for {
		for i, k := range idx {
			order[i] = ids[k]
		}
		visit(order)

		// rightmost ascent
		i := n - 2
		for i >= 0 && idx[i] >= idx[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		// smallest index right of i that is larger than idx[i]
		j := n - 1
		for idx[j] <= idx[i] {
			j--
		}
		idx[i], idx[j] = idx[j], idx[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			idx[l], idx[r] = idx[r], idx[l]
		}
	}
}
