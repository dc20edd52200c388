// Package algo implements the cooperative grid planning engine:
// time-expanded single-agent search, reservation tables, congestion
// penalties, prioritized planning and exhaustive ordering search.
package algo

import (
	"errors"
	"sort"

	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// Solver is the interface for multi-agent planners.
type Solver interface {
	// Solve attempts to plan all agents in the instance.
	Solve(inst *core.Instance) (*core.Solution, error)

	// Name returns the algorithm name.
	Name() string
}

// Recoverable planning failures. None is fatal to the hosting process;
// callers decide whether to retry with relaxed constraints.
var (
	// ErrNotFound means the open set emptied before reaching the goal.
	ErrNotFound = errors.New("no path: open set exhausted")

	// ErrExpansionLimit means the search hit its dequeue budget.
	// Callers treat it the same way as ErrNotFound.
	ErrExpansionLimit = errors.New("no path: expansion limit exceeded")

	// ErrNoValidOrdering means no permutation of agent planning order
	// produced a complete solution.
	ErrNoValidOrdering = errors.New("no agent ordering yields a complete solution")
)

// Movement cost units.
const (
	CostCardinal = 10 // one cardinal step, also one wait
	CostDiagonal = 14 // heuristic only: no diagonal transitions exist
)

// Heuristic returns the diagonal-distance estimate between two cells.
// Movement is 4-connected, so the estimate underestimates true cost
// (true cost >= 10*(dx+dy) >= h) and stays admissible. It is
// intentionally loose; a tight Manhattan estimate would change
// expansion counts, not outcomes.
func Heuristic(a, b *core.Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return CostDiagonal*dy + CostCardinal*(dx-dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortedAgentIDs returns the keys of paths in ascending order.
func sortedAgentIDs(paths map[core.AgentID]core.Path) []core.AgentID {
	agents := make([]core.AgentID, 0, len(paths))
	for id := range paths {
		agents = append(agents, id)
	}
	sort.Slice(agents, func(i, j int) bool {
		return agents[i] < agents[j]
	})
	return agents
}
