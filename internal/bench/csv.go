package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// WriteCSV exports results to a CSV file, one row per run.
func WriteCSV(results []Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"run_id", "timestamp", "scenario", "solver", "agents",
		"valid", "total_cost", "trials", "runtime_ms",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.RunID,
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Scenario,
			r.Solver,
			fmt.Sprintf("%d", r.Agents),
			fmt.Sprintf("%t", r.Valid),
			fmt.Sprintf("%d", r.TotalCost),
			fmt.Sprintf("%d", r.Trials),
			fmt.Sprintf("%.3f", float64(r.Runtime.Microseconds())/1000.0),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}
