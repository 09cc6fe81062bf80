package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads a delimited text file with a header row.
type CSVSource struct {
	path      string
	delimiter rune
}

// NewCSVSource returns a reader for path. A zero delimiter means comma.
func NewCSVSource(path string, delimiter rune) *CSVSource {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVSource{path: path, delimiter: delimiter}
}

func (s *CSVSource) Name() string { return s.path }

func (s *CSVSource) Read(ctx context.Context) (*RawTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return ReadCSV(ctx, file, s.delimiter)
}

// ReadCSV parses delimited text from r. Rows that fail to parse are skipped
// and counted.
func ReadCSV(ctx context.Context, r io.Reader, delimiter rune) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read csv header: %w", ErrEmptySource)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := columnIndex(headers)
	table := &RawTable{Present: presentColumns(index)}

	for line := 0; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				table.Skipped++
				continue
			}
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, rawFromCells(index, row, allValid))
	}
	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
