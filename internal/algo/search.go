package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// DefaultExpansionLimit bounds a single search when the caller does
// not. The limit is the only cancellation mechanism inside a search.
const DefaultExpansionLimit = 100000

// SearchOptions configures one temporal search.
type SearchOptions struct {
	// AllowWait enables the stay-in-place action at cardinal-step cost.
	AllowWait bool

	// ExpansionLimit caps dequeues; 0 means DefaultExpansionLimit.
	ExpansionLimit int

	// Penalty supplies congestion weights added to step cost. Nil
	// disables penalties.
	Penalty *PenaltyGrid

	// PenaltyWindow, when positive, counts only penalties stamped
	// within this many timesteps of the arrival time.
	PenaltyWindow int
}

// searchState is a (cell, timestep) pair, the unit of search.
type searchState struct {
	cell core.CellID
	t    int
}

// searchNode lives in the search arena; parent is an arena index,
// never a pointer, so reconstruction walks indices only.
type searchNode struct {
	state     searchState
	g, h      int
	parent    int32 // arena index, -1 for the root
	heapIndex int
	closed    bool
}

// openHeap orders arena indices by f = g+h, ties broken by lower h.
type openHeap struct {
	arena *[]searchNode
	items []int32
}

func (o *openHeap) Len() int { return len(o.items) }

func (o *openHeap) Less(i, j int) bool {
	a := &(*o.arena)[o.items[i]]
	b := &(*o.arena)[o.items[j]]
	if a.g+a.h != b.g+b.h {
		return a.g+a.h < b.g+b.h
	}
	return a.h < b.h
}

func (o *openHeap) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	(*o.arena)[o.items[i]].heapIndex = i
	(*o.arena)[o.items[j]].heapIndex = j
}

func (o *openHeap) Push(x any) {
	idx := x.(int32)
	(*o.arena)[idx].heapIndex = len(o.items)
	o.items = append(o.items, idx)
}

func (o *openHeap) Pop() any {
	old := o.items
	n := len(old)
	idx := old[n-1]
	o.items = old[:n-1]
	return idx
}

// FindPath runs a time-expanded best-first search from start to goal
// against the reservation table. It succeeds the instant the goal cell
// is dequeued at any timestep; it fails with ErrNotFound when the open
// set empties and ErrExpansionLimit when the dequeue budget runs out.
func FindPath(grid *core.Grid, start, goal *core.Cell, table *ReservationTable, opts SearchOptions) (core.Path, error) {
	limit := opts.ExpansionLimit
	if limit <= 0 {
		limit = DefaultExpansionLimit
	}

	arena := make([]searchNode, 0, 256)
	arena = append(arena, searchNode{
		state:  searchState{cell: start.ID, t: 0},
		h:      Heuristic(start, goal),
		parent: -1,
	})

	open := &openHeap{arena: &arena}
	heap.Init(open)
	heap.Push(open, int32(0))

	// best known arena index per state
	seen := map[searchState]int32{arena[0].state: 0}

	expansions := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(int32)
		st := arena[cur].state
		g := arena[cur].g
		h := arena[cur].h

		if st.cell == goal.ID {
			return reconstructPath(grid, arena, cur), nil
		}
		arena[cur].closed = true

		expansions++
		if expansions > limit {
			return nil, ErrExpansionLimit
		}

		cell := grid.CellByID(st.cell)
		nextT := st.t + 1

		for _, n := range grid.NeighborsOf(cell) {
			if n.Obstacle {
				continue
			}
			if table.IsVertexReserved(n, nextT) {
				continue
			}
			// Both directions: a reserved (n -> cell) arrival at nextT
			// means another agent is swapping through head-on.
			if table.IsEdgeReserved(cell, n, nextT) || table.IsEdgeReserved(n, cell, nextT) {
				continue
			}
			step := CostCardinal + penaltyFor(opts, n, nextT)
			relax(&arena, open, seen, cur, searchState{cell: n.ID, t: nextT}, g+step, Heuristic(n, goal))
		}

		if opts.AllowWait && !table.IsVertexReserved(cell, nextT) {
			// No edge check: waiting moves nothing.
			step := CostCardinal + penaltyFor(opts, cell, nextT)
			relax(&arena, open, seen, cur, searchState{cell: cell.ID, t: nextT}, g+step, h)
		}
	}

	return nil, ErrNotFound
}

// relax inserts a newly discovered state or improves an open one in
// place (decrease-key). Closed states are never re-expanded;
// equal-or-worse rediscoveries are discarded.
func relax(arena *[]searchNode, open *openHeap, seen map[searchState]int32, parent int32, st searchState, g, h int) {
	if idx, ok := seen[st]; ok {
		n := &(*arena)[idx]
		if n.closed || g >= n.g {
			return
		}
		n.g = g
		n.parent = parent
		heap.Fix(open, n.heapIndex)
		return
	}

	idx := int32(len(*arena))
	*arena = append(*arena, searchNode{state: st, g: g, h: h, parent: parent})
	seen[st] = idx
	heap.Push(open, idx)
}

// reconstructPath walks parent indices from the goal node back to the
// root, then reverses. The returned path has the start cell at index 0.
func reconstructPath(grid *core.Grid, arena []searchNode, goal int32) core.Path {
	n := 0
	for idx := goal; idx >= 0; idx = arena[idx].parent {
		n++
	}
	path := make(core.Path, n)
	for idx := goal; idx >= 0; idx = arena[idx].parent {
		n--
		path[n] = grid.CellByID(arena[idx].state.cell)
	}
	return path
}

func penaltyFor(opts SearchOptions, c *core.Cell, t int) int {
	if opts.Penalty == nil {
		return 0
	}
	if opts.PenaltyWindow > 0 {
		return opts.Penalty.TemporalPenaltyAt(c, t, opts.PenaltyWindow)
	}
	return opts.Penalty.PenaltyAt(c)
}
