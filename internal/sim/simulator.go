// Package sim replays committed solutions timestep by timestep,
// standing in for the movement/animation collaborator: it advances
// discrete time, tracks per-agent positions (agents hold their goal
// cell after arrival) and audits every step for conflicts.
package sim

import (
	"errors"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// ErrInvalidSolution rejects playback of an incomplete solution.
var ErrInvalidSolution = errors.New("cannot replay an invalid solution")

// Metrics summarizes one full playback.
type Metrics struct {
	Makespan  int
	Conflicts int
	Waits     map[core.AgentID]int
	Arrivals  map[core.AgentID]int // arrival timestep per agent
}

// TotalWaits sums waits over all agents.
func (m Metrics) TotalWaits() int {
	total := 0
	for _, w := range m.Waits {
		total += w
	}
	return total
}

// Simulator steps through a solution one timestep at a time.
type Simulator struct {
	sol      *core.Solution
	t        int
	makespan int
}

// New creates a simulator over a valid solution.
func New(sol *core.Solution) (*Simulator, error) {
	if sol == nil || !sol.Valid {
		return nil, ErrInvalidSolution
	}
	return &Simulator{sol: sol, makespan: sol.Makespan()}, nil
}

// Time returns the current timestep.
func (s *Simulator) Time() int { return s.t }

// Done reports whether every agent has arrived.
func (s *Simulator) Done() bool { return s.t >= s.makespan }

// Positions returns each agent's cell at the current timestep.
func (s *Simulator) Positions() map[core.AgentID]*core.Cell {
	positions := make(map[core.AgentID]*core.Cell, len(s.sol.Paths))
	for id, path := range s.sol.Paths {
		positions[id] = algo.PositionAt(path, s.t)
	}
	return positions
}

// StepConflicts returns the conflicts present at the current timestep:
// two agents on one cell, or a swap completing at this step.
func (s *Simulator) StepConflicts() []*algo.Conflict {
	var conflicts []*algo.Conflict
	for _, c := range algo.FindAllConflicts(s.sol.Paths) {
		if c.T == s.t {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

// Step advances one timestep. It returns false once every agent has
// arrived.
func (s *Simulator) Step() bool {
	if s.Done() {
		return false
	}
	s.t++
	return true
}

// Run replays the whole solution and collects metrics.
func Run(sol *core.Solution) (Metrics, error) {
	sim, err := New(sol)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{
		Makespan: sim.makespan,
		Waits:    make(map[core.AgentID]int, len(sol.Paths)),
		Arrivals: make(map[core.AgentID]int, len(sol.Paths)),
	}
	for id, path := range sol.Paths {
		m.Waits[id] = path.Waits()
		m.Arrivals[id] = len(path) - 1
	}

	for {
		m.Conflicts += len(sim.StepConflicts())
		if !sim.Step() {
			break
		}
	}
	return m, nil
}
