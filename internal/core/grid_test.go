package core

import "testing"

func TestNewGridCells(t *testing.T) {
	g := NewGrid(4, 3, 1.0, Vec2{})

	c := g.CellAt(2, 1)
	if c == nil {
		t.Fatal("CellAt(2,1) returned nil")
	}
	if c.X != 2 || c.Y != 1 {
		t.Errorf("cell coordinates = (%d,%d), want (2,1)", c.X, c.Y)
	}
	if c.ID != CellID(1*4+2) {
		t.Errorf("cell ID = %d, want %d", c.ID, 1*4+2)
	}
	if g.CellByID(c.ID) != c {
		t.Error("CellByID did not return the same cell")
	}

	// World anchor is the cell center
	if c.World.X != 2.5 || c.World.Y != 1.5 {
		t.Errorf("world anchor = (%.1f,%.1f), want (2.5,1.5)", c.World.X, c.World.Y)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, 1.0, Vec2{})
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if c := g.CellAt(xy[0], xy[1]); c != nil {
			t.Errorf("CellAt(%d,%d) = %v, want nil", xy[0], xy[1], c)
		}
	}
}

func TestCellAtWorldClamps(t *testing.T) {
	g := NewGrid(3, 3, 2.0, Vec2{X: 10, Y: 10})

	tests := []struct {
		p    Vec2
		x, y int
	}{
		{Vec2{X: 11, Y: 11}, 0, 0},   // inside first cell
		{Vec2{X: 15, Y: 13}, 2, 1},   // interior
		{Vec2{X: -5, Y: -5}, 0, 0},   // far below origin
		{Vec2{X: 100, Y: 100}, 2, 2}, // far beyond extent
		{Vec2{X: 100, Y: 11}, 2, 0},  // clamped on one axis only
	}
	for _, tt := range tests {
		c := g.CellAtWorld(tt.p)
		if c.X != tt.x || c.Y != tt.y {
			t.Errorf("CellAtWorld(%v) = (%d,%d), want (%d,%d)", tt.p, c.X, c.Y, tt.x, tt.y)
		}
	}
}

func TestNeighborsOf(t *testing.T) {
	g := NewGrid(3, 3, 1.0, Vec2{})

	if n := g.NeighborsOf(g.CellAt(1, 1)); len(n) != 4 {
		t.Errorf("center cell has %d neighbors, want 4", len(n))
	}
	if n := g.NeighborsOf(g.CellAt(0, 0)); len(n) != 2 {
		t.Errorf("corner cell has %d neighbors, want 2", len(n))
	}
	if n := g.NeighborsOf(g.CellAt(1, 0)); len(n) != 3 {
		t.Errorf("border cell has %d neighbors, want 3", len(n))
	}

	// Every neighbor is 4-adjacent
	c := g.CellAt(1, 1)
	for _, n := range g.NeighborsOf(c) {
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("neighbor (%d,%d) of (1,1) is not 4-adjacent", n.X, n.Y)
		}
	}
}

func TestSetObstacle(t *testing.T) {
	g := NewGrid(3, 3, 1.0, Vec2{})

	g.SetObstacle(1, 1, true)
	if !g.IsObstacle(g.CellAt(1, 1)) {
		t.Error("cell (1,1) should be an obstacle")
	}
	if g.IsObstacle(g.CellAt(0, 0)) {
		t.Error("cell (0,0) should be free")
	}

	g.SetObstacle(1, 1, false)
	if g.IsObstacle(g.CellAt(1, 1)) {
		t.Error("cell (1,1) should be free again")
	}

	// Out-of-bounds set is a no-op
	g.SetObstacle(-1, 5, true)
}

func TestFreeCells(t *testing.T) {
	g := NewGrid(3, 3, 1.0, Vec2{})
	g.SetObstacle(0, 0, true)
	g.SetObstacle(2, 2, true)

	free := g.FreeCells()
	if len(free) != 7 {
		t.Errorf("FreeCells returned %d cells, want 7", len(free))
	}
	for _, c := range free {
		if c.Obstacle {
			t.Errorf("FreeCells returned obstacle cell (%d,%d)", c.X, c.Y)
		}
	}
}

func TestPathWaits(t *testing.T) {
	g := NewGrid(3, 1, 1.0, Vec2{})
	a, b, c := g.CellAt(0, 0), g.CellAt(1, 0), g.CellAt(2, 0)

	p := Path{a, a, b, b, c}
	if p.Waits() != 2 {
		t.Errorf("Waits() = %d, want 2", p.Waits())
	}
	if p.Cost() != 5 {
		t.Errorf("Cost() = %d, want 5", p.Cost())
	}
}
