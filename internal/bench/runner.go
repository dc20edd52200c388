// Package bench runs solver benchmark matrices and records results.
package bench

import (
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// Result is one solver run on one scenario.
type Result struct {
	RunID     string // uuid
	Timestamp time.Time
	Scenario  string
	Solver    string
	Agents    int
	Valid     bool
	TotalCost int
	Trials    int // ordering trials; 1 for fixed-order solvers
	Runtime   time.Duration
}

// Runner executes every solver against every instance it is given.
type Runner struct {
	Solvers []algo.Solver
}

// NewRunner creates a runner over the given solvers.
func NewRunner(solvers ...algo.Solver) *Runner {
	return &Runner{Solvers: solvers}
}

// Run executes each solver once on the instance and returns one result
// per solver. Planning failures become invalid results, not errors.
func (r *Runner) Run(name string, inst *core.Instance) []Result {
	results := make([]Result, 0, len(r.Solvers))
	for _, solver := range r.Solvers {
		results = append(results, runOne(name, inst, solver))
	}
	return results
}

func runOne(name string, inst *core.Instance, solver algo.Solver) Result {
	res := Result{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Scenario:  name,
		Solver:    solver.Name(),
		Agents:    len(inst.Agents),
		Trials:    1,
	}

	start := time.Now()
	var sol *core.Solution
	var err error
	if opt, ok := solver.(*algo.Optimizer); ok {
		var stats algo.Stats
		sol, stats, err = opt.SolveStats(inst)
		res.Trials = stats.Trials
	} else {
		sol, err = solver.Solve(inst)
	}
	res.Runtime = time.Since(start)

	if err != nil || sol == nil || !sol.Valid {
		return res
	}
	res.Valid = true
	res.TotalCost = sol.TotalCost
	return res
}
