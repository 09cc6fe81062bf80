package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelstats/internal/export"
	"reelstats/internal/report"
)

func newTitlesCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List the filtered titles (title, type, release year, rating)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, records, err := ctx.filteredRecords(cmd, &flags)
			if err != nil {
				return err
			}
			rows := export.Project(records)
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			if jsonOutput {
				return writeJSON(cmd, rows)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.RenderRows(rows))
			fmt.Fprintf(out, "%d of %d titles shown (%d matched)\n", len(rows), store.Len(), len(records))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum rows to list (0 = all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
