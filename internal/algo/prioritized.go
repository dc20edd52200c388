package algo

import "github.com/elektrokombinacija/mapf-grid/internal/core"

// Prioritized plans agents sequentially against a growing reservation
// table: each accepted path is committed before the next agent runs,
// so later agents route around everything planned so far.
type Prioritized struct {
	Opts SearchOptions
}

// NewPrioritized creates a prioritized planner.
func NewPrioritized(opts SearchOptions) *Prioritized {
	return &Prioritized{Opts: opts}
}

func (p *Prioritized) Name() string { return "Prioritized" }

// PlanOne plans a single agent against the table as currently
// committed, without committing the result.
func PlanOne(grid *core.Grid, agent *core.Agent, table *ReservationTable, opts SearchOptions) (core.Path, error) {
	return FindPath(grid, agent.Start, agent.Goal, table, opts)
}

// PlanOrdered plans every agent in the given order against table. The
// first failure marks the trial invalid and stops it; paths planned so
// far stay in the returned solution.
func (p *Prioritized) PlanOrdered(inst *core.Instance, order core.Ordering, table *ReservationTable) *core.Solution {
	sol := core.NewSolution()
	sol.Order = append(core.Ordering(nil), order...)
	sol.Valid = true

	for _, id := range order {
		agent := inst.AgentByID(id)
		if agent == nil {
			sol.Valid = false
			break
		}
		path, err := PlanOne(inst.Grid, agent, table, p.Opts)
		if err != nil {
			sol.Valid = false
			break
		}
		sol.Paths[id] = path
		table.CommitPath(id, path)
	}

	sol.ComputeTotalCost()
	return sol
}

// Solve plans in the instance's natural agent order with a fresh
// table. Failure to place every agent is reported through Valid, not
// as an error.
func (p *Prioritized) Solve(inst *core.Instance) (*core.Solution, error) {
	order := make(core.Ordering, len(inst.Agents))
	for i, a := range inst.Agents {
		order[i] = a.ID
	}
	return p.PlanOrdered(inst, order, NewReservationTable()), nil
}
