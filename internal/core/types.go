// Package core defines the domain model for cooperative grid planning.
package core

// AgentID is a unique agent identifier.
type AgentID int

// CellID indexes a cell within its grid (row-major).
type CellID int

// Vec2 is a world-space position.
type Vec2 struct {
	X, Y float64
}

// Cell is one addressable position in the grid. Cells are created once
// by NewGrid and owned by it for the process lifetime; only the
// obstacle flag changes, and only during setup.
type Cell struct {
	ID       CellID
	X, Y     int
	Obstacle bool
	World    Vec2 // anchor position for movement consumers
}

// Path is a sequence of cells; index i is the cell occupied at
// timestep i, index 0 is the start cell.
type Path []*Cell

// Cost returns the path cost as cell count including the start cell.
func (p Path) Cost() int { return len(p) }

// Waits counts the timesteps where the path stays in place.
func (p Path) Waits() int {
	waits := 0
	for i := 1; i < len(p); i++ {
		if p[i].ID == p[i-1].ID {
			waits++
		}
	}
	return waits
}

// Ordering is a permutation of agent IDs defining planning priority.
type Ordering []AgentID

// Agent pairs a start cell with a goal cell.
type Agent struct {
	ID    AgentID
	Start *Cell
	Goal  *Cell
}

// NewAgent creates an agent.
func NewAgent(id AgentID, start, goal *Cell) *Agent {
	return &Agent{ID: id, Start: start, Goal: goal}
}
