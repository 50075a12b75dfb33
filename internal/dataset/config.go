// Package dataset generates, persists and summarises batches of Langton's ant
// runs. Each run is described by a Config and recorded as a Result.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"langton-ant/internal/core"
	"langton-ant/internal/sims/langton"
	pcore "langton-ant/pkg/core"
)

// Config is the starting condition of one simulation.
type Config struct {
	StartPosition  [2]int
	StartDirection int
	GridSize       int
	InitialGrid    *core.ByteGrid
}

type configJSON struct {
	StartPosition    [2]int   `json:"start_position"`
	StartDirection   int      `json:"start_direction"`
	GridSize         int      `json:"grid_size"`
	HasInitialGrid   bool     `json:"has_initial_grid"`
	InitialGridShape []int    `json:"initial_grid_shape,omitempty"`
	InitialGrid      []string `json:"initial_grid,omitempty"`
}

// MarshalJSON stores the initial grid inline as rows of '0'/'1'.
func (c Config) MarshalJSON() ([]byte, error) {
	out := configJSON{
		StartPosition:  c.StartPosition,
		StartDirection: c.StartDirection,
		GridSize:       c.GridSize,
	}
	if c.InitialGrid != nil {
		out.HasInitialGrid = true
		out.InitialGridShape = []int{c.InitialGrid.H, c.InitialGrid.W}
		out.InitialGrid = c.InitialGrid.Rows()
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Config) UnmarshalJSON(data []byte) error {
	var in configJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.StartPosition = in.StartPosition
	c.StartDirection = in.StartDirection
	c.GridSize = in.GridSize
	if c.GridSize == 0 {
		c.GridSize = langton.DefaultSize
	}
	c.InitialGrid = nil
	if !in.HasInitialGrid {
		return nil
	}
	grid, err := core.GridFromRows(in.InitialGrid)
	if err != nil {
		return fmt.Errorf("initial grid: %w", err)
	}
	if len(in.InitialGridShape) == 2 && (in.InitialGridShape[0] != grid.H || in.InitialGridShape[1] != grid.W) {
		return fmt.Errorf("initial grid: shape %v does not match %dx%d rows", in.InitialGridShape, grid.H, grid.W)
	}
	c.InitialGrid = grid
	return nil
}

// SimConfig converts c into the automaton's construction parameters.
func (c Config) SimConfig(margin int) langton.Config {
	return langton.Config{
		Size:      c.GridSize,
		Start:     &core.Point{X: c.StartPosition[0], Y: c.StartPosition[1]},
		Direction: c.StartDirection,
		Margin:    margin,
		Initial:   c.InitialGrid,
	}
}

// RandomConfig draws a start position away from the edges, a start
// direction, and optionally a random pattern with the given black density.
func RandomConfig(rng *pcore.RNG, gridSize int, allowPattern bool, density float64) Config {
	if gridSize <= 0 {
		gridSize = langton.DefaultSize
	}
	margin := gridSize / 4
	cfg := Config{
		StartPosition: [2]int{
			rng.IntRange(margin, gridSize-margin),
			rng.IntRange(margin, gridSize-margin),
		},
		StartDirection: rng.IntRange(0, 4),
		GridSize:       gridSize,
	}
	if allowPattern {
		grid := core.NewByteGrid(gridSize, gridSize)
		pcore.FillDensity(rng.Source(), grid.Cells(), density)
		cfg.InitialGrid = grid
	}
	return cfg
}

// SaveConfig writes c as indented JSON.
func SaveConfig(path string, c Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeAtomic(path, data)
}

// LoadConfig reads a Config written by SaveConfig.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
