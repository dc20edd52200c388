// Package scenario loads, saves and generates planning problem files.
//
// A scenario file is the JSON description of one problem: grid
// dimensions, obstacle coordinates and the agent start/goal list.
// ToInstance turns a validated scenario into a core.Instance ready for
// the planners.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/elektrokombinacija/mapf-grid/internal/core"
)

// Scenario file validation errors.
var (
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	ErrBadCellSize   = errors.New("cell size must be positive")
	ErrNoAgents      = errors.New("scenario has no agents")
	ErrOutOfBounds   = errors.New("coordinate outside grid bounds")
	ErrOnObstacle    = errors.New("agent endpoint on an obstacle")
	ErrDuplicateID   = errors.New("duplicate agent id")
)

// CellRef is a grid coordinate in a scenario file.
type CellRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AgentSpec describes one agent's start and goal.
type AgentSpec struct {
	ID    int     `json:"id"`
	Start CellRef `json:"start"`
	Goal  CellRef `json:"goal"`
}

// Scenario is the on-disk problem description.
type Scenario struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	CellSize  float64     `json:"cell_size"`
	Obstacles []CellRef   `json:"obstacles,omitempty"`
	Agents    []AgentSpec `json:"agents"`
	Seed      int64       `json:"seed,omitempty"`
	Generated string      `json:"generated,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario as indented JSON.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	return nil
}

// Validate checks dimensions, obstacle bounds and agent endpoints.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrBadDimensions
	}
	if s.CellSize <= 0 {
		return ErrBadCellSize
	}
	if len(s.Agents) == 0 {
		return ErrNoAgents
	}

	inBounds := func(r CellRef) bool {
		return r.X >= 0 && r.X < s.Width && r.Y >= 0 && r.Y < s.Height
	}
	blocked := make(map[CellRef]bool, len(s.Obstacles))
	for _, o := range s.Obstacles {
		if !inBounds(o) {
			return fmt.Errorf("obstacle (%d,%d): %w", o.X, o.Y, ErrOutOfBounds)
		}
		blocked[o] = true
	}

	seen := make(map[int]bool, len(s.Agents))
	for _, a := range s.Agents {
		if seen[a.ID] {
			return fmt.Errorf("agent %d: %w", a.ID, ErrDuplicateID)
		}
		seen[a.ID] = true
		for _, r := range []CellRef{a.Start, a.Goal} {
			if !inBounds(r) {
				return fmt.Errorf("agent %d at (%d,%d): %w", a.ID, r.X, r.Y, ErrOutOfBounds)
			}
			if blocked[r] {
				return fmt.Errorf("agent %d at (%d,%d): %w", a.ID, r.X, r.Y, ErrOnObstacle)
			}
		}
	}
	return nil
}

// ToInstance builds the grid, applies obstacles and creates the
// agents. The resulting instance is validated before it is returned.
func (s *Scenario) ToInstance() (*core.Instance, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	grid := core.NewGrid(s.Width, s.Height, s.CellSize, core.Vec2{})
	for _, o := range s.Obstacles {
		grid.SetObstacle(o.X, o.Y, true)
	}

	inst := core.NewInstance(grid)
	for _, a := range s.Agents {
		inst.Agents = append(inst.Agents, core.NewAgent(
			core.AgentID(a.ID),
			grid.CellAt(a.Start.X, a.Start.Y),
			grid.CellAt(a.Goal.X, a.Goal.Y),
		))
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}
