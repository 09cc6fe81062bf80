package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelstats/internal/aggregate"
	"reelstats/internal/catalog"
	"reelstats/internal/export"
	"reelstats/internal/filter"
	"reelstats/internal/report"
)

type summaryPayload struct {
	Source      string                        `json:"source"`
	LoadID      string                        `json:"load_id"`
	Total       int                           `json:"total"`
	Criteria    filter.Criteria               `json:"criteria"`
	Sections    []report.Section              `json:"sections"`
	Result      aggregate.Result              `json:"result"`
	Preview     []export.Row                  `json:"preview,omitempty"`
	Notices     []catalog.MissingColumnNotice `json:"notices,omitempty"`
	Warnings    int                           `json:"warnings"`
	SkippedRows int                           `json:"skipped_rows"`
}

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var variant string
	var sections []string
	var topN, wordTopN, previewRows int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate views over the filtered catalog",
		Long: "Show aggregate views over the filtered catalog.\n\n" +
			"Variants select a set of sections: overview, genres, durations, words, full.\n" +
			"--sections overrides the variant with an explicit list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("variant") {
				variant = cfg.Report.Variant
			}
			if !cmd.Flags().Changed("sections") {
				sections = cfg.Report.Sections
			}
			if !cmd.Flags().Changed("top") {
				topN = cfg.Report.TopN
			}
			if !cmd.Flags().Changed("word-top") {
				wordTopN = cfg.Report.WordTopN
			}
			if !cmd.Flags().Changed("preview") {
				previewRows = cfg.Report.PreviewRows
			}
			chosen, err := report.Resolve(variant, sections)
			if err != nil {
				return err
			}

			store, criteria, records, err := ctx.filteredRecords(cmd, &flags)
			if err != nil {
				return err
			}
			result := aggregate.Compute(records, aggregate.Options{
				TopN:         topN,
				WordTopN:     wordTopN,
				StopWords:    cfg.Report.StopWords,
				TrimPunct:    cfg.Report.TrimPunct,
				Capabilities: store.Capabilities(),
			})
			preview := export.Project(records)
			if previewRows >= 0 && len(preview) > previewRows {
				preview = preview[:previewRows]
			}

			if jsonOutput {
				return writeJSON(cmd, summaryPayload{
					Source:      store.SourceName(),
					LoadID:      store.ID(),
					Total:       store.Len(),
					Criteria:    criteria,
					Sections:    chosen,
					Result:      result,
					Preview:     preview,
					Notices:     store.Notices(),
					Warnings:    store.Warnings().Total,
					SkippedRows: store.SkippedRows(),
				})
			}

			out := cmd.OutOrStdout()
			if err := report.Render(out, report.Input{
				Source:   store.SourceName(),
				Total:    store.Len(),
				Criteria: describeCriteria(criteria),
				Result:   result,
				Preview:  preview,
				Notices:  store.Notices(),
				Sections: chosen,
			}, report.Options{Colorize: shouldColorize(out)}); err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&variant, "variant", "", "Report variant (overview, genres, durations, words, full)")
	cmd.Flags().StringSliceVar(&sections, "sections", nil, "Explicit sections to show; overrides --variant")
	cmd.Flags().IntVar(&topN, "top", 0, "Entries per ranked view (0 = all)")
	cmd.Flags().IntVar(&wordTopN, "word-top", 0, "Entries in the title word view (0 = all)")
	cmd.Flags().IntVar(&previewRows, "preview", 0, "Rows in the titles preview")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
