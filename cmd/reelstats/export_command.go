package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelstats/internal/config"
	"reelstats/internal/export"
)

const defaultExportFile = "filtered_titles.csv"

func newExportCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered titles as CSV",
		Long: "Write the filtered titles as CSV with the columns title, type, release_year, rating.\n\n" +
			"Use --out - to write to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, records, err := ctx.filteredRecords(cmd, &flags)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "-" {
				return export.WriteCSV(cmd.OutOrStdout(), records)
			}
			if target == "" {
				target = defaultExportFile
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := export.WriteFile(target, records); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d titles to %s\n", len(records), target)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default "+defaultExportFile+", - for stdout)")
	return cmd
}
