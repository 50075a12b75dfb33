package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"langton-ant/internal/core"
	"langton-ant/internal/sims/langton"
)

type runOutput struct {
	Detected   bool   `json:"detected"`
	Direction  string `json:"direction,omitempty"`
	Steps      int    `json:"steps"`
	Expansions int    `json:"expansions"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation until a highway is confirmed",
		Long: `Run a single simulation headless and report the highway direction.

Examples:
  langton run
  langton run --size 60 --x 10 --y 12 --dir 1
  langton run --max-steps 20000 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			simCfg := cfg.Simulation
			if flags.Changed("size") {
				simCfg.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("dir") {
				simCfg.Direction, _ = flags.GetInt("dir")
			}
			if flags.Changed("margin") {
				simCfg.Margin, _ = flags.GetInt("margin")
			}
			if flags.Changed("x") || flags.Changed("y") {
				x, _ := flags.GetInt("x")
				y, _ := flags.GetInt("y")
				simCfg.Start = &core.Point{X: x, Y: y}
			}
			maxSteps := cfg.Run.MaxSteps
			if flags.Changed("max-steps") {
				maxSteps, _ = flags.GetInt("max-steps")
			}
			interval := cfg.Run.CheckInterval
			if flags.Changed("check-interval") {
				interval, _ = flags.GetInt("check-interval")
			}

			sim, err := langton.New(simCfg)
			if err != nil {
				return fmt.Errorf("build simulation: %w", err)
			}
			sim.SetLogger(log)
			log.Info("running", "size", simCfg.Size, "direction", simCfg.Direction, "max_steps", maxSteps)
			sim.RunUntilHighway(maxSteps, interval)

			out := sim.Outcome()
			res := runOutput{
				Detected:   out.Detected,
				Direction:  string(out.Direction),
				Steps:      out.Steps,
				Expansions: out.Expansions,
				Width:      out.Width,
				Height:     out.Height,
			}
			w := cmd.OutOrStdout()
			if jsonOut, _ := flags.GetBool("json"); jsonOut {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			if res.Detected {
				fmt.Fprintf(w, "Highway %s confirmed after %d steps\n", res.Direction, res.Steps)
			} else {
				fmt.Fprintf(w, "No highway within %d steps\n", res.Steps)
			}
			fmt.Fprintf(w, "Grid: %dx%d (%d expansions)\n", res.Width, res.Height, res.Expansions)
			return nil
		},
	}

	cmd.Flags().Int("size", langton.DefaultSize, "Initial grid side")
	cmd.Flags().Int("x", 0, "Start column (default centre)")
	cmd.Flags().Int("y", 0, "Start row (default centre)")
	cmd.Flags().Int("dir", 0, "Start direction: 0=N 1=E 2=S 3=W")
	cmd.Flags().Int("margin", langton.DefaultMargin, "Clearance kept between the ant and the grid edge")
	cmd.Flags().Int("max-steps", 100000, "Step budget")
	cmd.Flags().Int("check-interval", 500, "Steps between highway checks")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
