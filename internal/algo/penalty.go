package algo

import "github.com/elektrokombinacija/mapf-grid/internal/core"

// PenaltyGrid accumulates per-cell congestion weight from committed
// paths. Searches read it as extra step cost to bias planning away
// from crowded cells. Reset happens once per planning episode;
// penalties persist across optimizer trials within an episode.
type PenaltyGrid struct {
	grid    *core.Grid
	weight  []int
	stamped []int // timestep of the last touch, -1 when never touched
}

// NewPenaltyGrid creates a zeroed penalty grid over grid's cells.
func NewPenaltyGrid(grid *core.Grid) *PenaltyGrid {
	pg := &PenaltyGrid{
		grid:    grid,
		weight:  make([]int, grid.Width*grid.Height),
		stamped: make([]int, grid.Width*grid.Height),
	}
	for i := range pg.stamped {
		pg.stamped[i] = -1
	}
	return pg
}

// RecordPath adds increment to every cell of path, stamping each
// touched cell with its path index. With expand set, the eight
// surrounding cells of each path cell also receive neighborIncrement
// under the same stamp, bounds-checked.
func (pg *PenaltyGrid) RecordPath(path core.Path, increment int, expand bool, neighborIncrement int) {
	for i, c := range path {
		pg.weight[c.ID] += increment
		pg.stamped[c.ID] = i
		if !expand {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := pg.grid.CellAt(c.X+dx, c.Y+dy)
				if n == nil {
					continue
				}
				pg.weight[n.ID] += neighborIncrement
				pg.stamped[n.ID] = i
			}
		}
	}
}

// PenaltyAt returns the raw accumulated weight of c.
func (pg *PenaltyGrid) PenaltyAt(c *core.Cell) int {
	return pg.weight[c.ID]
}

// TemporalPenaltyAt returns the weight of c only while its last touch
// is at most maxAge timesteps older than now, else zero. This makes
// congestion a decaying-relevance signal.
func (pg *PenaltyGrid) TemporalPenaltyAt(c *core.Cell, now, maxAge int) int {
	s := pg.stamped[c.ID]
	if s < 0 || now-s > maxAge {
		return 0
	}
	return pg.weight[c.ID]
}

// Reset zeroes all weights and stamps. Call once per planning episode,
// never inside the optimizer's permutation loop.
func (pg *PenaltyGrid) Reset() {
	for i := range pg.weight {
		pg.weight[i] = 0
		pg.stamped[i] = -1
	}
}
