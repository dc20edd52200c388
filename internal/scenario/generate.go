package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// Generation errors.
var (
	ErrTooManyAgents = errors.New("not enough free cells for the requested agents")
	ErrUnreachable   = errors.New("could not sample a reachable start/goal pair")
)

// Params controls random scenario generation. The same seed always
// yields the same scenario.
type Params struct {
	Seed            int64
	Width, Height   int
	CellSize        float64
	NumAgents       int
	ObstacleDensity float64 // fraction of cells blocked, 0..1
}

// maxSampleAttempts bounds goal sampling per agent before giving up.
const maxSampleAttempts = 200

// Generate builds a random scenario: obstacles are placed at the
// requested density, then each agent's start and goal are sampled from
// the remaining free cells and checked for 4-connected reachability
// ignoring the other agents, so every agent is individually solvable.
func Generate(p Params) (*Scenario, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrBadDimensions
	}
	if p.CellSize <= 0 {
		p.CellSize = 1.0
	}

	rng := rand.New(rand.NewSource(p.Seed))
	grid := core.NewGrid(p.Width, p.Height, p.CellSize, core.Vec2{})

	s := &Scenario{
		Name:      fmt.Sprintf("grid_%dx%d_a%d_s%d", p.Width, p.Height, p.NumAgents, p.Seed),
		Width:     p.Width,
		Height:    p.Height,
		CellSize:  p.CellSize,
		Seed:      p.Seed,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if rng.Float64() < p.ObstacleDensity {
				grid.SetObstacle(x, y, true)
				s.Obstacles = append(s.Obstacles, CellRef{X: x, Y: y})
			}
		}
	}

	free := grid.FreeCells()
	if len(free) < 2*p.NumAgents {
		return nil, ErrTooManyAgents
	}

	usedStart := make(map[core.CellID]bool)
	usedGoal := make(map[core.CellID]bool)
	for i := 0; i < p.NumAgents; i++ {
		var start, goal *core.Cell
		found := false
		for attempt := 0; attempt < maxSampleAttempts; attempt++ {
			start = free[rng.Intn(len(free))]
			goal = free[rng.Intn(len(free))]
			if start.ID == goal.ID || usedStart[start.ID] || usedGoal[goal.ID] {
				continue
			}
			if reachable(grid, start, goal) {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("agent %d: %w", i, ErrUnreachable)
		}
		usedStart[start.ID] = true
		usedGoal[goal.ID] = true
		s.Agents = append(s.Agents, AgentSpec{
			ID:    i,
			Start: CellRef{X: start.X, Y: start.Y},
			Goal:  CellRef{X: goal.X, Y: goal.Y},
		})
	}

	return s, nil
}

// reachable runs a breadth-first search over free cells.
func reachable(grid *core.Grid, start, goal *core.Cell) bool {
	if start.ID == goal.ID {
		return true
	}
	visited := map[core.CellID]bool{start.ID: true}
	queue := []*core.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range grid.NeighborsOf(c) {
			if n.Obstacle || visited[n.ID] {
				continue
			}
			if n.ID == goal.ID {
				return true
			}
			visited[n.ID] = true
			queue = append(queue, n)
		}
	}
	return false
}
