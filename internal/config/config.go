// Package config loads the YAML settings shared by the langton command.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"langton-ant/internal/dataset"
	"langton-ant/internal/sims/langton"
)

// File is the top-level configuration document.
type File struct {
	// Simulation configures single runs of the automaton.
	Simulation langton.Config `yaml:"simulation"`

	// Run bounds single runs.
	Run RunConfig `yaml:"run"`

	// Dataset configures batch generation.
	Dataset DatasetConfig `yaml:"dataset"`

	// Logging sets the log verbosity.
	Logging LoggingConfig `yaml:"logging"`
}

// RunConfig bounds a single run.
type RunConfig struct {
	MaxSteps      int `yaml:"max_steps"`
	CheckInterval int `yaml:"check_interval"`
}

// DatasetConfig mirrors the generate command's flags.
type DatasetConfig struct {
	Count          int     `yaml:"count"`
	Output         string  `yaml:"output"`
	GridSize       int     `yaml:"grid_size"`
	MaxSteps       int     `yaml:"max_steps"`
	CheckInterval  int     `yaml:"check_interval"`
	Patterns       bool    `yaml:"patterns"`
	PatternDensity float64 `yaml:"pattern_density"`
	Prefix         string  `yaml:"prefix"`
	Seed           int64   `yaml:"seed"`
	Workers        int     `yaml:"workers"`
	Margin         int     `yaml:"margin"`
}

// LoggingConfig sets the level: "trace", "debug", "info", "warn" or "error".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *File {
	opts := dataset.DefaultOptions()
	return &File{
		Simulation: langton.DefaultConfig(),
		Run: RunConfig{
			MaxSteps:      100000,
			CheckInterval: 500,
		},
		Dataset: DatasetConfig{
			Count:          opts.Count,
			Output:         "dataset",
			GridSize:       opts.GridSize,
			MaxSteps:       opts.MaxSteps,
			CheckInterval:  opts.CheckInterval,
			Patterns:       opts.AllowPattern,
			PatternDensity: opts.PatternDensity,
			Prefix:         opts.Prefix,
			Seed:           opts.Seed,
			Workers:        runtime.NumCPU(),
			Margin:         opts.Margin,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *File) Validate() error {
	if c.Simulation.Direction < 0 || c.Simulation.Direction > 3 {
		return fmt.Errorf("simulation.direction must be 0-3, got %d", c.Simulation.Direction)
	}
	if c.Simulation.Margin < 0 {
		return fmt.Errorf("simulation.margin must be non-negative, got %d", c.Simulation.Margin)
	}
	if c.Run.MaxSteps < 0 {
		return fmt.Errorf("run.max_steps must be non-negative, got %d", c.Run.MaxSteps)
	}
	return c.Dataset.Validate()
}

// Validate checks the generate settings.
func (d DatasetConfig) Validate() error {
	if d.Count <= 0 {
		return fmt.Errorf("dataset.count must be positive, got %d", d.Count)
	}
	if d.GridSize < 10 {
		return fmt.Errorf("dataset.grid_size must be at least 10, got %d", d.GridSize)
	}
	if d.PatternDensity < 0 || d.PatternDensity > 1 {
		return fmt.Errorf("dataset.pattern_density must be between 0 and 1, got %g", d.PatternDensity)
	}
	if d.Workers < 1 {
		return fmt.Errorf("dataset.workers must be at least 1, got %d", d.Workers)
	}
	if d.MaxSteps <= 0 {
		return fmt.Errorf("dataset.max_steps must be positive, got %d", d.MaxSteps)
	}
	return nil
}

// Options converts d into generator options.
func (d DatasetConfig) Options() dataset.Options {
	return dataset.Options{
		Count:          d.Count,
		GridSize:       d.GridSize,
		MaxSteps:       d.MaxSteps,
		CheckInterval:  d.CheckInterval,
		AllowPattern:   d.Patterns,
		PatternDensity: d.PatternDensity,
		Prefix:         d.Prefix,
		Seed:           d.Seed,
		Workers:        d.Workers,
		Margin:         d.Margin,
	}
}
