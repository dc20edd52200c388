package algo

import "github.com/elektrokombinacija/mapf-grid/internal/core"

// Conflict is a collision between two committed paths: either two
// agents on one cell at one timestep, or a swap (reversed traversal of
// one edge at one timestep).
type Conflict struct {
	Agent1, Agent2 core.AgentID
	Cell           *core.Cell
	T              int
	IsSwap         bool
	From, To       *core.Cell // populated for swap conflicts
}

// PositionAt returns the cell an agent occupies at timestep t. Agents
// hold their final cell after arrival, so a parked agent still counts
// as occupying its goal. That is stricter than the reservation
// discipline, which releases goal cells after the arrival timestep.
func PositionAt(path core.Path, t int) *core.Cell {
	if len(path) == 0 {
		return nil
	}
	if t >= len(path) {
		return path[len(path)-1]
	}
	if t < 0 {
		return path[0]
	}
	return path[t]
}

// stepAt returns the move arriving at timestep t, or nils when the
// path has ended or t is the start timestep.
func stepAt(path core.Path, t int) (from, to *core.Cell) {
	if t <= 0 || t >= len(path) {
		return nil, nil
	}
	return path[t-1], path[t]
}

// FindFirstConflict returns the earliest conflict among paths, or nil.
// Vertex conflicts at a timestep are reported before swap conflicts at
// the same timestep; pairs are scanned in ascending agent-ID order.
func FindFirstConflict(paths map[core.AgentID]core.Path) *Conflict {
	conflicts := findConflicts(paths, true)
	if len(conflicts) == 0 {
		return nil
	}
	return conflicts[0]
}

// FindAllConflicts returns every conflict among paths in timestep
// order.
func FindAllConflicts(paths map[core.AgentID]core.Path) []*Conflict {
	return findConflicts(paths, false)
}

func findConflicts(paths map[core.AgentID]core.Path, firstOnly bool) []*Conflict {
	agents := sortedAgentIDs(paths)

	horizon := 0
	for _, p := range paths {
		if len(p) > horizon {
			horizon = len(p)
		}
	}

	var conflicts []*Conflict
	for t := 0; t < horizon; t++ {
		for i := 0; i < len(agents); i++ {
			for j := i + 1; j < len(agents); j++ {
				p1, p2 := paths[agents[i]], paths[agents[j]]

				c1 := PositionAt(p1, t)
				c2 := PositionAt(p2, t)
				if c1 != nil && c2 != nil && c1.ID == c2.ID {
					conflicts = append(conflicts, &Conflict{
						Agent1: agents[i],
						Agent2: agents[j],
						Cell:   c1,
						T:      t,
					})
					if firstOnly {
						return conflicts
					}
					continue
				}

				f1, t1 := stepAt(p1, t)
				f2, t2 := stepAt(p2, t)
				if f1 == nil || f2 == nil {
					continue
				}
				if f1.ID == t1.ID || f2.ID == t2.ID {
					continue // waits cannot swap
				}
				if f1.ID == t2.ID && t1.ID == f2.ID {
					conflicts = append(conflicts, &Conflict{
						Agent1: agents[i],
						Agent2: agents[j],
						Cell:   f1,
						T:      t,
						IsSwap: true,
						From:   f1,
						To:     t1,
					})
					if firstOnly {
						return conflicts
					}
				}
			}
		}
	}
	return conflicts
}
