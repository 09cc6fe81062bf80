package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptySource reports a source that parsed but held no records.
	ErrEmptySource = errors.New("source has no records")
	// ErrMissingColumn reports a source lacking a required column.
	ErrMissingColumn = errors.New("required column missing")
)

// DataSourceError is returned by Load when the catalog cannot be built. It is
// fatal to start-up and is never retried.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load catalog: %v", e.Err)
	}
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func sourceError(source string, err error) error {
	return &DataSourceError{Source: source, Err: err}
}

// Warning describes a per-record field that could not be derived. The field
// is left nil and loading continues.
type Warning struct {
	Index  int
	Field  string
	Raw    string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("record %d: %s %q: %s", w.Index, w.Field, w.Raw, w.Reason)
}

// WarningSummary aggregates derivation warnings for one load.
type WarningSummary struct {
	Total   int
	ByField map[string]int
	// Samples keeps the first few warnings for diagnostics.
	Samples []Warning
}

const warningSampleLimit = 5

func (s *WarningSummary) add(w Warning) {
	if s.ByField == nil {
		s.ByField = make(map[string]int)
	}
	s.Total++
	s.ByField[w.Field]++
	if len(s.Samples) < warningSampleLimit {
		s.Samples = append(s.Samples, w)
	}
}

// FieldNames returns the fields with warnings, sorted.
func (s WarningSummary) FieldNames() []string {
	names := make([]string, 0, len(s.ByField))
	for name := range s.ByField {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MissingColumnNotice reports an optional column absent from the source. The
// dependent filters and aggregates are unavailable; it is not an error.
type MissingColumnNotice struct {
	Column Column `json:"column"`
	Impact string `json:"impact"`
}

func (n MissingColumnNotice) String() string {
	return fmt.Sprintf("column %s missing: %s", n.Column, n.Impact)
}

func columnImpact(col Column) string {
	switch col {
	case ColumnReleaseYear:
		return "release-year filter and yearly counts unavailable"
	case ColumnDateAdded:
		return "added-year filter and added-by-year counts unavailable"
	case ColumnGenres:
		return "genre filter and genre ranking unavailable"
	case ColumnCountry:
		return "country filter and country ranking unavailable"
	case ColumnRating:
		return "rating filter and rating ranking unavailable"
	case ColumnDuration:
		return "movie duration views unavailable"
	default:
		return "dependent views unavailable"
	}
}

var errNilSource = errors.New("no source configured")

func missingColumnError(col Column) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, col)
}
