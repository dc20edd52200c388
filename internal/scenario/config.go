package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
)

// Config validation errors.
var (
	ErrBadExpansionLimit = errors.New("expansion_limit must be non-negative")
	ErrBadPenalty        = errors.New("penalty increments must be non-negative")
	ErrBadPenaltyWindow  = errors.New("penalty_window must be non-negative")
)

// PlannerConfig is the TOML planner configuration shared by the demo
// binary and the benchmark runner.
type PlannerConfig struct {
	// AllowWait enables the stay-in-place action.
	AllowWait bool `toml:"allow_wait"`
	// ExpansionLimit caps dequeues per search; 0 uses the engine default.
	ExpansionLimit int `toml:"expansion_limit"`

	// PenaltyIncrement is added to every cell of a recorded path;
	// 0 disables congestion penalties entirely.
	PenaltyIncrement int `toml:"penalty_increment"`
	// PenaltyExpand also penalizes the 8 surrounding cells.
	PenaltyExpand bool `toml:"penalty_expand"`
	// PenaltyNeighborIncrement is the surrounding-cell increment.
	PenaltyNeighborIncrement int `toml:"penalty_neighbor_increment"`
	// PenaltyWindow, when positive, makes penalties count only within
	// this many timesteps of their recording.
	PenaltyWindow int `toml:"penalty_window"`
}

// DefaultPlannerConfig returns the built-in defaults: waits on,
// penalties off.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		AllowWait:                true,
		ExpansionLimit:           0,
		PenaltyIncrement:         0,
		PenaltyExpand:            false,
		PenaltyNeighborIncrement: 0,
		PenaltyWindow:            0,
	}
}

// LoadPlannerConfig reads a TOML config file, falling back to defaults
// when the path does not exist.
func LoadPlannerConfig(path string) (PlannerConfig, error) {
	cfg := DefaultPlannerConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative limits and increments.
func (c PlannerConfig) Validate() error {
	if c.ExpansionLimit < 0 {
		return ErrBadExpansionLimit
	}
	if c.PenaltyIncrement < 0 || c.PenaltyNeighborIncrement < 0 {
		return ErrBadPenalty
	}
	if c.PenaltyWindow < 0 {
		return ErrBadPenaltyWindow
	}
	return nil
}

// SearchOptions binds the config to the engine, attaching the given
// penalty grid (may be nil).
func (c PlannerConfig) SearchOptions(penalty *algo.PenaltyGrid) algo.SearchOptions {
	return algo.SearchOptions{
		AllowWait:      c.AllowWait,
		ExpansionLimit: c.ExpansionLimit,
		Penalty:        penalty,
		PenaltyWindow:  c.PenaltyWindow,
	}
}
