package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelstats/internal/catalog"
)

func newOptionsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "options [field...]",
		Short: "List the distinct values available for each filter",
		Long: "List the distinct values available for each filter.\n\n" +
			"Fields: type, genre, country, rating, release_year, year_added.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := catalog.Fields()
			if len(args) > 0 {
				fields = fields[:0:0]
				for _, arg := range args {
					field, ok := catalog.ParseField(arg)
					if !ok {
						return fmt.Errorf("unknown field %q", arg)
					}
					fields = append(fields, field)
				}
			}

			store, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				payload := make(map[catalog.Field][]string, len(fields))
				for _, field := range fields {
					payload[field] = store.DistinctValues(field)
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			for _, field := range fields {
				values := store.DistinctValues(field)
				switch {
				case !store.Has(field.Column()):
					fmt.Fprintf(out, "%s: unavailable (no %s column)\n", field, field.Column())
				case len(values) == 0:
					fmt.Fprintf(out, "%s: (none)\n", field)
				default:
					fmt.Fprintf(out, "%s (%d): %s\n", field, len(values), strings.Join(values, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
