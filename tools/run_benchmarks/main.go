// Package main runs the solver benchmark matrix over scenario files
// and records results to CSV and the SQLite history store.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elektrokombinacija/mapf-grid/internal/algo"
	"github.com/elektrokombinacija/mapf-grid/internal/bench"
	"github.com/elektrokombinacija/mapf-grid/internal/scenario"
)

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing scenario JSON files")
	outputFile := flag.String("output", "results/benchmark_results.csv", "Output CSV file")
	dbFile := flag.String("db", "results/benchmarks.db", "SQLite history database")
	configFile := flag.String("config", "planner.toml", "Planner TOML config")
	maxAgents := flag.Int("max-agents", 7, "Skip the ordering optimizer above this agent count")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	cfg, err := scenario.LoadPlannerConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_instances first: go run ./tools/gen_instances -output %s\n", *inputDir)
		os.Exit(1)
	}
	sort.Strings(files)

	store, err := bench.OpenStore(*dbFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	opts := cfg.SearchOptions(nil)
	fixed := algo.NewPrioritized(opts)
	optimal := algo.NewOptimizer(opts)

	var all []bench.Result
	fmt.Printf("Running benchmarks: %d scenarios\n\n", len(files))

	for _, file := range files {
		s, err := scenario.Load(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}
		inst, err := s.ToInstance()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building %s: %v\n", s.Name, err)
			continue
		}

		solvers := []algo.Solver{fixed}
		if len(inst.Agents) <= *maxAgents {
			// n! trials: keep the exhaustive optimizer off big instances
			solvers = append(solvers, optimal)
		}

		runner := bench.NewRunner(solvers...)
		results := runner.Run(s.Name, inst)
		all = append(all, results...)

		if *verbose {
			for _, r := range results {
				fmt.Printf("  %s / %-18s valid=%-5t cost=%-4d trials=%-4d %v\n",
					r.Scenario, r.Solver, r.Valid, r.TotalCost, r.Trials, r.Runtime)
			}
		} else {
			fmt.Printf("\r[%d results] Running...", len(all))
		}
	}
	fmt.Println()

	if err := bench.WriteCSV(all, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}
	if err := store.InsertAll(all); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing store: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s and %s\n", *outputFile, *dbFile)

	printSummary(all)
}

func printSummary(results []bench.Result) {
	type agg struct {
		runs, valid, cost int
		trials            int
	}
	bySolver := make(map[string]*agg)
	for _, r := range results {
		a, ok := bySolver[r.Solver]
		if !ok {
			a = &agg{}
			bySolver[r.Solver] = a
		}
		a.runs++
		a.trials += r.Trials
		if r.Valid {
			a.valid++
			a.cost += r.TotalCost
		}
	}

	var names []string
	for name := range bySolver {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-20s %6s %6s %10s %10s\n", "Solver", "Runs", "Valid", "AvgCost", "Trials")
	fmt.Println(strings.Repeat("-", 56))
	for _, name := range names {
		a := bySolver[name]
		avgCost := 0.0
		if a.valid > 0 {
			avgCost = float64(a.cost) / float64(a.valid)
		}
		fmt.Printf("%-20s %6d %6d %10.1f %10d\n", name, a.runs, a.valid, avgCost, a.trials)
	}
}
