package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"langton-ant/internal/config"
	"langton-ant/internal/dataset"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset of randomised simulations",
		Long: `Run many simulations with random start positions, directions and
optional random patterns, and save one JSON result per simulation.

Examples:
  langton generate --count 100 --output dataset
  langton generate --count 50 --grid-size 60 --no-patterns --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			d := cfg.Dataset
			if flags.Changed("count") {
				d.Count, _ = flags.GetInt("count")
			}
			if flags.Changed("output") {
				d.Output, _ = flags.GetString("output")
			}
			if flags.Changed("grid-size") {
				d.GridSize, _ = flags.GetInt("grid-size")
			}
			if flags.Changed("max-steps") {
				d.MaxSteps, _ = flags.GetInt("max-steps")
			}
			if flags.Changed("check-interval") {
				d.CheckInterval, _ = flags.GetInt("check-interval")
			}
			if flags.Changed("no-patterns") {
				noPatterns, _ := flags.GetBool("no-patterns")
				d.Patterns = !noPatterns
			}
			if flags.Changed("pattern-density") {
				d.PatternDensity, _ = flags.GetFloat64("pattern-density")
			}
			if flags.Changed("prefix") {
				d.Prefix, _ = flags.GetString("prefix")
			}
			if flags.Changed("seed") {
				d.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("workers") {
				d.Workers, _ = flags.GetInt("workers")
			}
			if err := d.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return generate(ctx, cmd, d, log)
		},
	}

	defaults := dataset.DefaultOptions()
	cmd.Flags().Int("count", defaults.Count, "Number of simulations")
	cmd.Flags().String("output", "dataset", "Output directory")
	cmd.Flags().Int("grid-size", defaults.GridSize, "Initial grid side (at least 10)")
	cmd.Flags().Int("max-steps", defaults.MaxSteps, "Step budget per simulation")
	cmd.Flags().Int("check-interval", defaults.CheckInterval, "Steps between highway checks")
	cmd.Flags().Bool("no-patterns", false, "Start every simulation on an all-white grid")
	cmd.Flags().Float64("pattern-density", defaults.PatternDensity, "Black cell density of random patterns (0-1)")
	cmd.Flags().String("prefix", defaults.Prefix, "Result file name prefix")
	cmd.Flags().Int64("seed", defaults.Seed, "Batch seed")
	cmd.Flags().Int("workers", defaults.Workers, "Concurrent simulations")
	return cmd
}

func generate(ctx context.Context, cmd *cobra.Command, d config.DatasetConfig, log *slog.Logger) error {
	gen, err := dataset.NewGenerator(d.Output, log)
	if err != nil {
		return err
	}
	log.Info("generating", "count", d.Count, "output", d.Output, "workers", d.Workers, "seed", d.Seed)

	start := time.Now()
	results, err := gen.Generate(ctx, d.Options())
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	log.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Saved %d results to %s\n", len(results), d.Output)
	return dataset.Summarize(results).Write(w)
}
