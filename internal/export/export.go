package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"reelstats/internal/catalog"
	"reelstats/internal/fileutil"
)

// Header is the projection's column order.
var Header = []string{"title", "type", "release_year", "rating"}

// Row is one projected record. Nil pointers are written as empty cells and
// read back as nil.
type Row struct {
	Title       *string             `json:"title"`
	Type        catalog.ContentType `json:"type"`
	ReleaseYear *int                `json:"release_year"`
	Rating      *string             `json:"rating"`
}

// Project maps records onto export rows, preserving order.
func Project(records []catalog.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Title:       rec.Title,
			Type:        rec.Type,
			ReleaseYear: rec.ReleaseYear,
			Rating:      rec.Rating,
		})
	}
	return rows
}

// Cells renders the row in Header order.
func (r Row) Cells() []string {
	year := ""
	if r.ReleaseYear != nil {
		year = strconv.Itoa(*r.ReleaseYear)
	}
	return []string{deref(r.Title), string(r.Type), year, deref(r.Rating)}
}

// WriteCSV writes the projection of records with a header row.
func WriteCSV(w io.Writer, records []catalog.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range Project(records) {
		if err := cw.Write(row.Cells()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteFile writes the projection to path atomically.
func WriteFile(path string, records []catalog.Record) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteCSV(w, records)
	})
}

// ReadCSV parses a projection written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, name := range Header {
		if strings.TrimSpace(header[i]) != name {
			return nil, fmt.Errorf("unexpected column %d: got %q want %q", i, header[i], name)
		}
	}

	rows := []Row{}
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}
		row := Row{
			Title:  ref(cells[0]),
			Type:   catalog.ContentType(cells[1]),
			Rating: ref(cells[3]),
		}
		if cells[2] != "" {
			year, err := strconv.Atoi(cells[2])
			if err != nil {
				return nil, fmt.Errorf("row %d release_year %q: %w", len(rows), cells[2], err)
			}
			row.ReleaseYear = &year
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile parses the projection stored at path.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
