package core

import "math"

// Grid is a fixed-size rectangular cell array with 4-connected
// movement. It owns its cells; callers keep the returned pointers.
type Grid struct {
	Width, Height int
	CellSize      float64
	Origin        Vec2 // world position of the grid's lower-left corner
	cells         []Cell
}

// NewGrid creates a width x height grid with every cell free.
func NewGrid(width, height int, cellSize float64, origin Vec2) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Origin:   origin,
		cells:    make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := CellID(y*width + x)
			g.cells[id] = Cell{
				ID: id,
				X:  x,
				Y:  y,
				World: Vec2{
					X: origin.X + (float64(x)+0.5)*cellSize,
					Y: origin.Y + (float64(y)+0.5)*cellSize,
				},
			}
		}
	}
	return g
}

// CellAt returns the cell at grid coordinates, or nil when out of bounds.
func (g *Grid) CellAt(x, y int) *Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return &g.cells[y*g.Width+x]
}

// CellByID returns the cell with the given row-major id.
func (g *Grid) CellByID(id CellID) *Cell {
	if id < 0 || int(id) >= len(g.cells) {
		return nil
	}
	return &g.cells[id]
}

// CellAtWorld maps a world position to the nearest cell, clamping
// positions outside the grid to the nearest border cell.
func (g *Grid) CellAtWorld(p Vec2) *Cell {
	x := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	y := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	if x < 0 {
		x = 0
	}
	if x >= g.Width {
		x = g.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.Height {
		y = g.Height - 1
	}
	return &g.cells[y*g.Width+x]
}

// NeighborsOf returns the up to four cardinal neighbors of c,
// bounds-checked. Obstacle cells are included; movement rules decide
// whether they are traversable.
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 4)
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if n := g.CellAt(c.X+d[0], c.Y+d[1]); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsObstacle reports whether c blocks movement.
func (g *Grid) IsObstacle(c *Cell) bool {
	return c == nil || c.Obstacle
}

// SetObstacle marks or clears the obstacle flag at (x, y). Setup only;
// planners treat the flags as immutable.
func (g *Grid) SetObstacle(x, y int, obstacle bool) {
	if c := g.CellAt(x, y); c != nil {
		c.Obstacle = obstacle
	}
}

// FreeCells returns all non-obstacle cells in row-major order.
func (g *Grid) FreeCells() []*Cell {
	var free []*Cell
	for i := range g.cells {
		if !g.cells[i].Obstacle {
			free = append(free, &g.cells[i])
		}
	}
	return free
}
