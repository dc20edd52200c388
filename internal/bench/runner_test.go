package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

func crossingInstance() *core.Instance {
	g := core.NewGrid(3, 3, 1.0, core.Vec2{})
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 1), g.CellAt(2, 1)),
		core.NewAgent(1, g.CellAt(1, 0), g.CellAt(1, 2)),
	}
	return inst
}

func TestRunnerProducesOneResultPerSolver(t *testing.T) {
	opts := algo.SearchOptions{AllowWait: true}
	runner := NewRunner(
		algo.NewPrioritized(opts),
		algo.NewOptimizer(opts),
	)

	results := runner.Run("crossing", crossingInstance())
	require.Len(t, results, 2)

	for _, res := range results {
		assert.NotEmpty(t, res.RunID)
		assert.Equal(t, "crossing", res.Scenario)
		assert.Equal(t, 2, res.Agents)
		assert.True(t, res.Valid)
		assert.Equal(t, 7, res.TotalCost)
	}

	assert.Equal(t, "Prioritized", results[0].Solver)
	assert.Equal(t, 1, results[0].Trials)
	assert.Equal(t, "OrderingOptimizer", results[1].Solver)
	assert.Equal(t, 2, results[1].Trials) // 2 agents, 2! orderings
}

func TestRunnerRecordsFailures(t *testing.T) {
	// Head-to-head corridor: no ordering can work.
	g := core.NewGrid(3, 1, 1.0, core.Vec2{})
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 0), g.CellAt(2, 0)),
		core.NewAgent(1, g.CellAt(2, 0), g.CellAt(0, 0)),
	}

	runner := NewRunner(algo.NewOptimizer(algo.SearchOptions{AllowWait: true}))
	results := runner.Run("corridor", inst)
	require.Len(t, results, 1)

	assert.False(t, results[0].Valid)
	assert.Zero(t, results[0].TotalCost)
	assert.Equal(t, 2, results[0].Trials)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	results := []Result{
		testResult("a", "Prioritized"),
		testResult("b", "OrderingOptimizer"),
	}
	require.NoError(t, WriteCSV(results, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 rows

	assert.Equal(t, []string{
		"run_id", "timestamp", "scenario", "solver", "agents",
		"valid", "total_cost", "trials", "runtime_ms",
	}, rows[0])
	assert.Equal(t, results[0].RunID, rows[1][0])
	assert.Equal(t, "a", rows[1][2])
	assert.Equal(t, "true", rows[1][5])
	assert.Equal(t, "21", rows[1][6])
	assert.Equal(t, "42.000", rows[1][8])
}
