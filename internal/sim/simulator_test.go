package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

func solvedCrossing(t *testing.T) *core.Solution {
	t.Helper()
	g := core.NewGrid(3, 3, 1.0, core.Vec2{})
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 1), g.CellAt(2, 1)),
		core.NewAgent(1, g.CellAt(1, 0), g.CellAt(1, 2)),
	}

	sol, _, err := algo.NewOptimizer(algo.SearchOptions{AllowWait: true}).SolveStats(inst)
	require.NoError(t, err)
	return sol
}

func TestRunConflictFreeSolution(t *testing.T) {
	sol := solvedCrossing(t)

	m, err := Run(sol)
	require.NoError(t, err)

	assert.Zero(t, m.Conflicts)
	assert.Equal(t, 3, m.Makespan)
	assert.Equal(t, 1, m.TotalWaits()) // the yielding agent waits once
	assert.Equal(t, 2, m.Arrivals[0])
	assert.Equal(t, 3, m.Arrivals[1])
}

func TestSimulatorStepsAndPositions(t *testing.T) {
	sol := solvedCrossing(t)

	sim, err := New(sol)
	require.NoError(t, err)

	assert.Equal(t, 0, sim.Time())
	start := sim.Positions()
	assert.Equal(t, 0, start[0].X)
	assert.Equal(t, 1, start[0].Y)

	steps := 0
	for sim.Step() {
		steps++
	}
	assert.Equal(t, sol.Makespan(), steps)
	assert.True(t, sim.Done())
	assert.False(t, sim.Step())

	// After arrival every agent holds its goal cell.
	end := sim.Positions()
	assert.Equal(t, 2, end[0].X)
	assert.Equal(t, 1, end[0].Y)
	assert.Equal(t, 1, end[1].X)
	assert.Equal(t, 2, end[1].Y)
}

func TestNewRejectsInvalidSolution(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidSolution)

	sol := core.NewSolution() // Valid is false
	_, err = New(sol)
	assert.ErrorIs(t, err, ErrInvalidSolution)
}

func TestStepConflictsReportsGoalPassThrough(t *testing.T) {
	// Corridor where the reservation discipline legally routes agent 0
	// through agent 1's already-reached goal cell: the hold-after-
	// arrival audit flags it.
	g := core.NewGrid(3, 1, 1.0, core.Vec2{})
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 0), g.CellAt(2, 0)),
		core.NewAgent(1, g.CellAt(2, 0), g.CellAt(1, 0)),
	}

	sol, _, err := algo.NewOptimizer(algo.SearchOptions{AllowWait: true}).SolveStats(inst)
	require.NoError(t, err)

	m, runErr := Run(sol)
	require.NoError(t, runErr)
	assert.Equal(t, 1, m.Conflicts)
}
