package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"langton-ant/internal/dataset"
	"langton-ant/internal/highway"
)

type statsOutput struct {
	Total        int            `json:"total"`
	Detected     int            `json:"detected"`
	DetectedPct  float64        `json:"detected_pct"`
	AverageSteps float64        `json:"average_steps"`
	ByDirection  map[string]int `json:"by_direction"`
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <dataset-dir|file.parquet>",
		Short: "Summarise a dataset",
		Long: `Print detection rate, average steps to highway and the direction
distribution of a dataset directory or an exported parquet file.

Examples:
  langton stats dataset
  langton stats results.parquet --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, _ := cmd.Flags().GetString("pattern")
			results, err := loadResults(args[0], pattern)
			if err != nil {
				return err
			}
			summary := dataset.Summarize(results)

			w := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				out := statsOutput{
					Total:        summary.Total,
					Detected:     summary.Detected,
					DetectedPct:  summary.DetectionRate(),
					AverageSteps: summary.AverageSteps,
					ByDirection:  make(map[string]int, len(highway.Directions)),
				}
				for _, dir := range highway.Directions {
					out.ByDirection[string(dir)] = summary.ByDirection[dir]
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return summary.Write(w)
		},
	}
	cmd.Flags().String("pattern", "*.json", "Glob for result files inside a dataset directory")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

// loadResults reads a parquet file or a directory of JSON results.
func loadResults(path, pattern string) ([]dataset.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !strings.HasSuffix(path, ".parquet") {
			return nil, fmt.Errorf("%s: expected a dataset directory or a .parquet file", path)
		}
		return dataset.ReadParquet(path)
	}
	return dataset.LoadDataset(path, pattern)
}
