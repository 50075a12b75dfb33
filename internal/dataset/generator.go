package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"langton-ant/internal/logging"
	"langton-ant/internal/sims/langton"
	pcore "langton-ant/pkg/core"
)

// Options controls a batch of simulations.
type Options struct {
	Count          int
	GridSize       int
	MaxSteps       int
	CheckInterval  int
	AllowPattern   bool
	PatternDensity float64
	Prefix         string
	Seed           int64
	Workers        int
	Margin         int
}

// DefaultOptions mirrors the command-line defaults.
func DefaultOptions() Options {
	return Options{
		Count:          10,
		GridSize:       langton.DefaultSize,
		MaxSteps:       100000,
		CheckInterval:  500,
		AllowPattern:   true,
		PatternDensity: 0.1,
		Prefix:         "sim",
		Seed:           1,
		Workers:        runtime.NumCPU(),
		Margin:         langton.DefaultMargin,
	}
}

// Generator runs simulations and writes their results into Dir.
type Generator struct {
	Dir    string
	Logger *slog.Logger
	Now    func() time.Time
}

// NewGenerator creates the output directory and returns a generator for it.
func NewGenerator(dir string, logger *slog.Logger) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{Dir: dir, Logger: logger, Now: time.Now}, nil
}

// RunSimulation runs one configuration to a highway or to the step budget.
func (g *Generator) RunSimulation(cfg Config, margin, maxSteps, checkInterval int) (Result, error) {
	sim, err := langton.New(cfg.SimConfig(margin))
	if err != nil {
		return Result{}, fmt.Errorf("build simulation: %w", err)
	}
	sim.SetLogger(g.logger())

	dir, found := sim.RunUntilHighway(maxSteps, checkInterval)
	out := sim.Outcome()
	res := Result{
		RunID:          uuid.NewString(),
		Config:         cfg,
		StepsToHighway: out.Steps,
		GridExpansions: out.Expansions,
		FinalGridSize:  [2]int{out.Width, out.Height},
		Timestamp:      g.now().Format(time.RFC3339),
	}
	if found {
		label := string(dir)
		res.HighwayDirection = &label
	}
	return res, nil
}

// Generate runs opts.Count random simulations on a bounded worker pool and
// saves each result as <prefix>_<index>.json. Every simulation draws from its
// own generator derived from (Seed, index), so the batch is reproducible
// regardless of scheduling. Results are returned in index order.
func (g *Generator) Generate(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "sim"
	}

	log := g.logger()
	results := make([]Result, opts.Count)
	var done atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < opts.Count; i++ {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rng := pcore.Derive(opts.Seed, i)
			cfg := RandomConfig(rng, opts.GridSize, opts.AllowPattern, opts.PatternDensity)
			res, err := g.RunSimulation(cfg, opts.Margin, opts.MaxSteps, opts.CheckInterval)
			if err != nil {
				return fmt.Errorf("simulation %d: %w", i, err)
			}
			res.Index = i
			res.Seed = opts.Seed

			path := filepath.Join(g.Dir, fmt.Sprintf("%s_%06d.json", prefix, i))
			if err := res.Save(path); err != nil {
				return fmt.Errorf("simulation %d: %w", i, err)
			}
			results[i] = res

			n := done.Add(1)
			log.Log(egCtx, logging.LevelTrace, "simulation finished", "index", i, "steps", res.StepsToHighway, "found", res.HighwayDirection != nil)
			if n == 1 || n%10 == 0 || int(n) == opts.Count {
				log.Info("progress", "completed", n, "total", opts.Count)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}
