package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"reelstats/internal/aggregate"
	"reelstats/internal/catalog"
	"reelstats/internal/export"
	"reelstats/internal/textutil"
)

// Input is everything one report needs.
type Input struct {
	Source   string
	Total    int
	Criteria string
	Result   aggregate.Result
	Preview  []export.Row
	Notices  []catalog.MissingColumnNotice
	Sections []Section
}

// Options controls presentation.
type Options struct {
	Colorize bool
}

// Render writes the report to w.
func Render(w io.Writer, in Input, opts Options) error {
	var b strings.Builder

	b.WriteString(header(fmt.Sprintf("Catalog %s", in.Source), opts.Colorize))
	fmt.Fprintf(&b, "  %d of %d titles match", in.Result.Total, in.Total)
	if in.Criteria != "" {
		fmt.Fprintf(&b, " (%s)", in.Criteria)
	}
	b.WriteString("\n")
	for _, n := range in.Notices {
		b.WriteString(notice(fmt.Sprintf("%s column missing: %s", n.Column, n.Impact), opts.Colorize))
	}

	for _, s := range in.Sections {
		b.WriteString("\n")
		b.WriteString(header(s.title(), opts.Colorize))
		if view, ok := s.View(); ok && !in.Result.Available(view) {
			b.WriteString(notice(fmt.Sprintf("unavailable: %s column missing from source", view.Column()), opts.Colorize))
			continue
		}
		b.WriteString(sectionBody(s, in))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderRows draws the export projection as a table.
func RenderRows(rows []export.Row) string {
	if len(rows) == 0 {
		return "  (no titles)\n"
	}
	headers := make([]string, len(export.Header))
	for i, h := range export.Header {
		headers[i] = textutil.Label(h)
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, row.Cells())
	}
	return renderTable(headers, cells, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}) + "\n"
}

func sectionBody(s Section, in Input) string {
	res := in.Result
	switch s {
	case SectionTypes:
		rows := make([][]string, 0, len(res.Types))
		for _, tc := range res.Types {
			rows = append(rows, []string{tc.Type.String(), strconv.Itoa(tc.Count), percent(tc.Count, res.Total)})
		}
		return tableOrEmpty([]string{"Type", "Titles", "Share"}, rows, alignLeft, alignRight, alignRight)
	case SectionYears:
		return yearTable("Release Year", res.Years)
	case SectionAdded:
		return yearTable("Year Added", res.Added)
	case SectionGenres:
		return countTable("Genre", res.Genres)
	case SectionRatings:
		return countTable("Rating", res.Ratings)
	case SectionCountries:
		return countTable("Country", res.Countries)
	case SectionLongest:
		return runtimeTable(res.Longest)
	case SectionShortest:
		return runtimeTable(res.Shortest)
	case SectionAverage:
		if res.AverageMins == nil {
			return "  no movies with a known duration\n"
		}
		return fmt.Sprintf("  %s minutes\n", formatMinutes(*res.AverageMins))
	case SectionWords:
		return countTable("Word", res.Words)
	case SectionPreview:
		return RenderRows(in.Preview)
	default:
		return ""
	}
}

func countTable(label string, counts []aggregate.Count) string {
	rows := make([][]string, 0, len(counts))
	for i, c := range counts {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Key, strconv.Itoa(c.Count)})
	}
	return tableOrEmpty([]string{"#", label, "Titles"}, rows, alignRight, alignLeft, alignRight)
}

func yearTable(label string, years []aggregate.YearCount) string {
	rows := make([][]string, 0, len(years))
	for _, y := range years {
		rows = append(rows, []string{strconv.Itoa(y.Year), strconv.Itoa(y.Count)})
	}
	return tableOrEmpty([]string{label, "Titles"}, rows, alignLeft, alignRight)
}

func runtimeTable(movies []aggregate.MovieRuntime) string {
	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, []string{strconv.Itoa(i + 1), m.Title, formatMinutes(m.Minutes)})
	}
	return tableOrEmpty([]string{"#", "Title", "Minutes"}, rows, alignRight, alignLeft, alignRight)
}

func tableOrEmpty(headers []string, rows [][]string, aligns ...columnAlignment) string {
	if len(rows) == 0 {
		return "  (no data)\n"
	}
	return renderTable(headers, rows, aligns) + "\n"
}

func formatMinutes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(part, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

func header(title string, colorize bool) string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if colorize {
		line = text.Colors{text.FgBlue, text.Bold}.Sprint(line)
	}
	return line + "\n"
}

func notice(msg string, colorize bool) string {
	line := "  [WARN] " + msg
	if colorize {
		line = text.FgYellow.Sprint(line)
	}
	return line + "\n"
}
