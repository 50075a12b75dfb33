package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"langton-ant/internal/highway"
)

// Result records the outcome of one simulation. HighwayDirection is nil when
// no highway was confirmed within the step budget.
type Result struct {
	RunID            string  `json:"run_id"`
	Index            int     `json:"index"`
	Seed             int64   `json:"seed"`
	Config           Config  `json:"configuration"`
	HighwayDirection *string `json:"highway_direction"`
	StepsToHighway   int     `json:"steps_to_highway"`
	GridExpansions   int     `json:"grid_expansions"`
	FinalGridSize    [2]int  `json:"final_grid_size"`
	Timestamp        string  `json:"timestamp"`
}

// Direction returns the confirmed highway direction, if any.
func (r Result) Direction() (highway.Direction, bool) {
	if r.HighwayDirection == nil {
		return "", false
	}
	return highway.Direction(*r.HighwayDirection), true
}

// Save writes r as indented JSON, creating parent directories.
func (r Result) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return writeAtomic(path, data)
}

// LoadResult reads a Result written by Save.
func LoadResult(path string) (Result, error) {
	var r Result
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read result: %w", err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decode result %s: %w", path, err)
	}
	return r, nil
}

// LoadDataset loads every result in dir matching pattern, in name order.
func LoadDataset(dir, pattern string) ([]Result, error) {
	if pattern == "" {
		pattern = "*.json"
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob dataset: %w", err)
	}
	sort.Strings(paths)

	var results []Result
	for _, path := range paths {
		if strings.HasSuffix(path, ".tmp") {
			continue
		}
		r, err := LoadResult(path)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
