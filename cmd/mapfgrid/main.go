// Command mapfgrid runs cooperative grid planning experiments.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/core"
	"github.com/elektrokombinacija/mapf-grid/internal/scenario"
	"github.com/elektrokombinacija/mapf-grid/internal/sim"
)

func main() {
	scenarioFile := flag.String("scenario", "", "Scenario JSON file (empty = built-in demos)")
	configFile := flag.String("config", "planner.toml", "Planner TOML config")
	flag.Parse()

	cfg, err := scenario.LoadPlannerConfig(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fmt.Println("=== Cooperative Grid Planning ===")

	if *scenarioFile != "" {
		s, err := scenario.Load(*scenarioFile)
		if err != nil {
			log.Fatalf("load scenario: %v", err)
		}
		inst, err := s.ToInstance()
		if err != nil {
			log.Fatalf("build instance: %v", err)
		}
		fmt.Printf("Scenario %s: %dx%d grid, %d obstacles, %d agents\n",
			s.Name, s.Width, s.Height, len(s.Obstacles), len(inst.Agents))
		runSolvers(inst, cfg)
		return
	}

	fmt.Println("--- Crossing demo (2 agents, shared center) ---")
	runSolvers(createCrossingInstance(), cfg)

	fmt.Println("\n--- Congestion demo (4 agents, narrow passage) ---")
	runSolvers(createPassageInstance(), cfg)
}

func runSolvers(inst *core.Instance, cfg scenario.PlannerConfig) {
	if err := inst.Validate(); err != nil {
		log.Fatalf("invalid instance: %v", err)
	}

	penalty := algo.NewPenaltyGrid(inst.Grid)
	opts := cfg.SearchOptions(penalty)
	if cfg.PenaltyIncrement == 0 {
		opts.Penalty = nil
	}

	solvers := []algo.Solver{
		algo.NewPrioritized(opts),
		algo.NewOptimizer(opts),
	}

	for _, solver := range solvers {
		fmt.Printf("\n  %s: ", solver.Name())
		start := time.Now()
		sol, err := solver.Solve(inst)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("no solution (%v, %v)\n", err, elapsed)
			continue
		}
		if !sol.Valid {
			fmt.Printf("incomplete (order %v, %v)\n", sol.Order, elapsed)
			continue
		}

		fmt.Printf("order=%v cost=%d makespan=%d time=%v\n",
			sol.Order, sol.TotalCost, sol.Makespan(), elapsed)

		metrics, err := sim.Run(sol)
		if err != nil {
			fmt.Printf("    playback failed: %v\n", err)
			continue
		}
		fmt.Printf("    playback: %d conflicts, %d waits\n",
			metrics.Conflicts, metrics.TotalWaits())

		if cfg.PenaltyIncrement > 0 {
			for _, path := range sol.Paths {
				penalty.RecordPath(path, cfg.PenaltyIncrement, cfg.PenaltyExpand, cfg.PenaltyNeighborIncrement)
			}
		}
	}
	fmt.Println()
}

// createCrossingInstance builds two agents whose shortest paths cross
// at the center of a 5x5 grid.
func createCrossingInstance() *core.Instance {
	g := core.NewGrid(5, 5, 1.0, core.Vec2{})
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 2), g.CellAt(4, 2)),
		core.NewAgent(1, g.CellAt(2, 0), g.CellAt(2, 4)),
	}
	return inst
}

// createPassageInstance builds four agents that all have to funnel
// through a one-cell gap in a wall.
func createPassageInstance() *core.Instance {
	g := core.NewGrid(7, 5, 1.0, core.Vec2{})
	for y := 0; y < 5; y++ {
		if y != 2 {
			g.SetObstacle(3, y, true)
		}
	}
	inst := core.NewInstance(g)
	inst.Agents = []*core.Agent{
		core.NewAgent(0, g.CellAt(0, 0), g.CellAt(6, 0)),
		core.NewAgent(1, g.CellAt(0, 4), g.CellAt(6, 4)),
		core.NewAgent(2, g.CellAt(6, 1), g.CellAt(0, 1)),
		core.NewAgent(3, g.CellAt(6, 3), g.CellAt(0, 3)),
	}
	return inst
}
