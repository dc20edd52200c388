package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScenario() *Scenario {
	return &Scenario{
		Name:      "sample",
		Width:     5,
		Height:    4,
		CellSize:  1.0,
		Obstacles: []CellRef{{X: 2, Y: 1}, {X: 2, Y: 2}},
		Agents: []AgentSpec{
			{ID: 0, Start: CellRef{X: 0, Y: 0}, Goal: CellRef{X: 4, Y: 3}},
			{ID: 1, Start: CellRef{X: 4, Y: 0}, Goal: CellRef{X: 0, Y: 3}},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")

	s := sampleScenario()
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, s.Name, loaded.Name)
	assert.Equal(t, s.Width, loaded.Width)
	assert.Equal(t, s.Height, loaded.Height)
	assert.Equal(t, s.Obstacles, loaded.Obstacles)
	assert.Equal(t, s.Agents, loaded.Agents)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		want   error
	}{
		{"ok", func(s *Scenario) {}, nil},
		{"zero width", func(s *Scenario) { s.Width = 0 }, ErrBadDimensions},
		{"negative cell size", func(s *Scenario) { s.CellSize = -1 }, ErrBadCellSize},
		{"no agents", func(s *Scenario) { s.Agents = nil }, ErrNoAgents},
		{"obstacle out of bounds", func(s *Scenario) {
			s.Obstacles = append(s.Obstacles, CellRef{X: 9, Y: 0})
		}, ErrOutOfBounds},
		{"agent out of bounds", func(s *Scenario) {
			s.Agents[0].Goal = CellRef{X: 5, Y: 3}
		}, ErrOutOfBounds},
		{"agent on obstacle", func(s *Scenario) {
			s.Agents[1].Start = CellRef{X: 2, Y: 1}
		}, ErrOnObstacle},
		{"duplicate agent id", func(s *Scenario) {
			s.Agents[1].ID = s.Agents[0].ID
		}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleScenario()
			tt.mutate(s)
			err := s.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestToInstance(t *testing.T) {
	s := sampleScenario()
	inst, err := s.ToInstance()
	require.NoError(t, err)

	assert.Equal(t, 5, inst.Grid.Width)
	assert.Equal(t, 4, inst.Grid.Height)
	assert.True(t, inst.Grid.IsObstacle(inst.Grid.CellAt(2, 1)))
	assert.False(t, inst.Grid.IsObstacle(inst.Grid.CellAt(2, 0)))

	require.Len(t, inst.Agents, 2)
	a := inst.AgentByID(0)
	require.NotNil(t, a)
	assert.Equal(t, 0, a.Start.X)
	assert.Equal(t, 0, a.Start.Y)
	assert.Equal(t, 4, a.Goal.X)
	assert.Equal(t, 3, a.Goal.Y)
}

func TestToInstanceRejectsInvalid(t *testing.T) {
	s := sampleScenario()
	s.Width = -1
	_, err := s.ToInstance()
	assert.ErrorIs(t, err, ErrBadDimensions)
}
