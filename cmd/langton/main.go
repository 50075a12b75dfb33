package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"langton-ant/internal/config"
	"langton-ant/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langton",
		Short: "Langton's ant simulations and highway datasets",
		Long: `langton runs Langton's ant on a growable grid and detects when it
settles into the diagonal highway.

It can run a single simulation, generate a dataset of randomised runs,
summarise a dataset, and export it to parquet.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newRunCmd(),
		newGenerateCmd(),
		newStatsCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadSettings reads --config and applies --log-level over it.
func loadSettings(cmd *cobra.Command) (*config.File, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}
