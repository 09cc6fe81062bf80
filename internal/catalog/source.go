package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source yields the raw rows of a catalog.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Read(ctx context.Context) (*RawTable, error)
}

// RawTable is the undigested content of a source.
type RawTable struct {
	// Present holds every recognized column found in the header.
	Present map[Column]bool
	Rows    []RawRecord
	// Skipped counts malformed rows the reader dropped.
	Skipped int
}

// Source formats accepted by OpenSource.
const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// SourceOptions selects and configures a source reader.
type SourceOptions struct {
	Format    string
	Table     string
	Delimiter rune
}

// OpenSource builds a Source for path. With FormatAuto (or an empty format)
// the reader is chosen from the file extension.
func OpenSource(path string, opts SourceOptions) (Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, sourceError("", fmt.Errorf("source path is empty"))
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" || format == FormatAuto {
		format = detectFormat(path)
	}
	switch format {
	case FormatCSV:
		return NewCSVSource(path, opts.Delimiter), nil
	case FormatSQLite:
		return NewSQLiteSource(path, opts.Table), nil
	default:
		return nil, sourceError(path, fmt.Errorf("unsupported source format %q", opts.Format))
	}
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// columnIndex maps recognized header cells to their positions. The first
// occurrence of a column wins.
func columnIndex(headers []string) map[Column]int {
	index := make(map[Column]int, len(headers))
	for i, header := range headers {
		col, ok := ResolveColumn(header)
		if !ok {
			continue
		}
		if _, seen := index[col]; seen {
			continue
		}
		index[col] = i
	}
	return index
}

func presentColumns(index map[Column]int) map[Column]bool {
	present := make(map[Column]bool, len(index))
	for col := range index {
		present[col] = true
	}
	return present
}

// rawFromCells builds a RawRecord from positional cells. valid reports
// whether the cell at position i holds a value (SQL NULL otherwise).
func rawFromCells(index map[Column]int, cells []string, valid func(i int) bool) RawRecord {
	cell := func(col Column) *string {
		i, ok := index[col]
		if !ok || i >= len(cells) || !valid(i) {
			return nil
		}
		value := cells[i]
		return &value
	}
	return RawRecord{
		Title:       cell(ColumnTitle),
		Type:        cell(ColumnType),
		ReleaseYear: cell(ColumnReleaseYear),
		DateAdded:   cell(ColumnDateAdded),
		Genres:      cell(ColumnGenres),
		Countries:   cell(ColumnCountry),
		Rating:      cell(ColumnRating),
		Duration:    cell(ColumnDuration),
	}
}

func allValid(int) bool { return true }
