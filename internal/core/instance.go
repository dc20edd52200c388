package core

import (
	"errors"
	"fmt"
)

// Validation errors reported by Instance.Validate.
var (
	ErrNilGrid        = errors.New("instance has no grid")
	ErrNoAgents       = errors.New("instance has no agents")
	ErrMissingCell    = errors.New("start or goal cell is nil")
	ErrObstacleCell   = errors.New("start or goal cell is an obstacle")
	ErrDuplicateAgent = errors.New("duplicate agent id")
	ErrDuplicateStart = errors.New("two agents share a start cell")
	ErrDuplicateGoal  = errors.New("two agents share a goal cell")
)

// Instance is one planning problem: a grid plus the agents to route.
type Instance struct {
	Grid   *Grid
	Agents []*Agent
}

// NewInstance creates an instance over the given grid.
func NewInstance(grid *Grid) *Instance {
	return &Instance{Grid: grid}
}

// AgentByID finds an agent by ID.
func (inst *Instance) AgentByID(id AgentID) *Agent {
	for _, a := range inst.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Validate checks instance consistency: every agent has in-bounds,
// non-obstacle start and goal cells, agent IDs are unique, and no two
// agents share a start or a goal.
func (inst *Instance) Validate() error {
	if inst.Grid == nil {
		return ErrNilGrid
	}
	if len(inst.Agents) == 0 {
		return ErrNoAgents
	}

	seenIDs := make(map[AgentID]bool)
	seenStarts := make(map[CellID]bool)
	seenGoals := make(map[CellID]bool)

	for _, a := range inst.Agents {
		if seenIDs[a.ID] {
			return fmt.Errorf("agent %d: %w", a.ID, ErrDuplicateAgent)
		}
		seenIDs[a.ID] = true

		if a.Start == nil || a.Goal == nil {
			return fmt.Errorf("agent %d: %w", a.ID, ErrMissingCell)
		}
		if a.Start.Obstacle || a.Goal.Obstacle {
			return fmt.Errorf("agent %d: %w", a.ID, ErrObstacleCell)
		}
		if seenStarts[a.Start.ID] {
			return fmt.Errorf("agent %d: %w", a.ID, ErrDuplicateStart)
		}
		seenStarts[a.Start.ID] = true
		if seenGoals[a.Goal.ID] {
			return fmt.Errorf("agent %d: %w", a.ID, ErrDuplicateGoal)
		}
		seenGoals[a.Goal.ID] = true
	}
	return nil
}
