package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langton-ant/internal/dataset"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <dataset-dir> <out.parquet>",
		Short: "Export a dataset directory to parquet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			pattern, _ := cmd.Flags().GetString("pattern")
			results, err := dataset.LoadDataset(args[0], pattern)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no results in %s", args[0])
			}
			if err := dataset.ExportParquet(args[1], results); err != nil {
				return err
			}
			log.Debug("exported", "rows", len(results), "path", args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d results to %s\n", len(results), args[1])
			return nil
		},
	}
	cmd.Flags().String("pattern", "*.json", "Glob for result files inside the dataset directory")
	return cmd
}
