package algo

import "github.com/elektrokombinacija/mapf-grid/internal/core"

// vertexKey identifies a cell at a timestep.
type vertexKey struct {
	cell core.CellID
	t    int
}

// edgeKey identifies a directed move arriving at a timestep.
type edgeKey struct {
	from, to core.CellID
	t        int
}

// vertexClaim records who holds a vertex reservation. The goal flag is
// descriptive metadata only: a goal cell is reserved at the arrival
// timestep, not for all later timesteps, so a later-planned agent may
// legally pass through an already-reached goal cell afterwards.
type vertexClaim struct {
	agent core.AgentID
	goal  bool
}

// ReservationTable registers per-timestep cell and edge occupancy for
// one planning trial. It is written only through CommitPath and read
// by searches; the sequential commit discipline, not the table itself,
// keeps reservations of different agents disjoint.
type ReservationTable struct {
	vertices map[vertexKey]vertexClaim
	edges    map[edgeKey]core.AgentID
}

// NewReservationTable creates an empty table.
func NewReservationTable() *ReservationTable {
	return &ReservationTable{
		vertices: make(map[vertexKey]vertexClaim),
		edges:    make(map[edgeKey]core.AgentID),
	}
}

// CommitPath records every (cell, timestep) of path as a vertex
// reservation, flagging the final index as the goal, and every
// directed edge between consecutive cells at the arrival timestep.
// Called exactly once per accepted path, strictly before the next
// agent in the ordering is planned.
func (rt *ReservationTable) CommitPath(agent core.AgentID, path core.Path) {
	for i, c := range path {
		rt.vertices[vertexKey{cell: c.ID, t: i}] = vertexClaim{
			agent: agent,
			goal:  i == len(path)-1,
		}
	}
	for i := 1; i < len(path); i++ {
		rt.edges[edgeKey{from: path[i-1].ID, to: path[i].ID, t: i}] = agent
	}
}

// IsVertexReserved reports whether some committed path occupies c at
// timestep t.
func (rt *ReservationTable) IsVertexReserved(c *core.Cell, t int) bool {
	_, ok := rt.vertices[vertexKey{cell: c.ID, t: t}]
	return ok
}

// IsEdgeReserved reports whether some committed path traverses
// from -> to arriving at timestep t.
func (rt *ReservationTable) IsEdgeReserved(from, to *core.Cell, t int) bool {
	_, ok := rt.edges[edgeKey{from: from.ID, to: to.ID, t: t}]
	return ok
}

// Clear drops all reservations.
func (rt *ReservationTable) Clear() {
	rt.vertices = make(map[vertexKey]vertexClaim)
	rt.edges = make(map[edgeKey]core.AgentID)
}
