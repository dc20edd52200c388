// Package main generates deterministic scenario files for benchmarks.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/mapf-grid/internal/scenario"
)

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	agents := flag.Int("agents", 4, "Number of agents")
	width := flag.Int("width", 10, "Grid width")
	height := flag.Int("height", 10, "Grid height")
	density := flag.Float64("density", 0.15, "Obstacle density (0-1)")
	count := flag.Int("count", 1, "Number of scenarios (seed increments per file)")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := scenario.Params{
			Seed:            *seed + int64(i),
			Width:           *width,
			Height:          *height,
			CellSize:        1.0,
			NumAgents:       *agents,
			ObstacleDensity: *density,
		}

		s, err := scenario.Generate(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating scenario (seed %d): %v\n", params.Seed, err)
			continue
		}

		filename := filepath.Join(*outputDir, s.Name+".json")
		if err := s.Save(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", filename, err)
			continue
		}

		fmt.Printf("Generated: %s (%d agents, %dx%d grid, %d obstacles)\n",
			filename, len(s.Agents), s.Width, s.Height, len(s.Obstacles))
	}
}
