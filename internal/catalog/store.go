package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"reelstats/internal/logging"
)

// Store is an immutable, loaded catalog.
type Store struct {
	id       string
	source   string
	records  []Record
	present  map[Column]bool
	notices  []MissingColumnNotice
	warnings WarningSummary
	skipped  int
	options  map[Field][]string
}

// LoadOption customizes Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		c.logger = logger
	}
}

// Load reads src, derives every record and returns the populated store. It
// fails with a *DataSourceError when the source is unreadable, lacks a
// required column, or holds no records.
func Load(ctx context.Context, src Source, opts ...LoadOption) (*Store, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := logging.NewComponentLogger(cfg.logger, "catalog")

	if src == nil {
		return nil, sourceError("", errNilSource)
	}
	name := src.Name()

	table, err := src.Read(ctx)
	if err != nil {
		return nil, sourceError(name, err)
	}
	for _, col := range Columns() {
		if col.Required() && !table.Present[col] {
			return nil, sourceError(name, missingColumnError(col))
		}
	}
	if len(table.Rows) == 0 {
		return nil, sourceError(name, ErrEmptySource)
	}

	store := &Store{
		id:      uuid.NewString(),
		source:  name,
		records: make([]Record, 0, len(table.Rows)),
		present: make(map[Column]bool, len(table.Present)),
		skipped: table.Skipped,
	}
	for col, ok := range table.Present {
		store.present[col] = ok
	}

	for _, col := range Columns() {
		if store.present[col] {
			continue
		}
		notice := MissingColumnNotice{Column: col, Impact: columnImpact(col)}
		store.notices = append(store.notices, notice)
		logger.Warn("optional column missing",
			logging.String("column", string(col)),
			logging.String(logging.FieldImpact, notice.Impact),
			logging.String("source", name),
		)
	}

	for i, raw := range table.Rows {
		rec, warnings := Derive(raw)
		rec.Index = i
		for _, w := range warnings {
			w.Index = i
			store.warnings.add(w)
			logger.Debug("field derivation warning",
				logging.Int("record", i),
				logging.String("field", w.Field),
				logging.String("raw", w.Raw),
				logging.String("reason", w.Reason),
			)
		}
		store.records = append(store.records, rec)
	}

	store.options = buildOptions(store.records, store.present)

	attrs := []logging.Attr{
		logging.String("source", name),
		logging.String("load_id", store.id),
		logging.Int("records", len(store.records)),
		logging.Int("warnings", store.warnings.Total),
	}
	if store.skipped > 0 {
		attrs = append(attrs, logging.Int("skipped_rows", store.skipped))
	}
	logger.Info("catalog loaded", logging.Args(attrs...)...)
	if store.warnings.Total > 0 {
		for _, field := range store.warnings.FieldNames() {
			logger.Info("derivation warnings",
				logging.String("field", field),
				logging.Int("count", store.warnings.ByField[field]),
			)
		}
	}

	return store, nil
}

// ID identifies this load. Each Load produces a fresh ID.
func (s *Store) ID() string { return s.id }

// SourceName returns the name of the source the store was loaded from.
func (s *Store) SourceName() string { return s.source }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// All returns the records in catalog order. The slice is a copy; the records
// themselves must not be modified.
func (s *Store) All() []Record {
	return slices.Clone(s.records)
}

// Has reports whether the source provided col.
func (s *Store) Has(col Column) bool {
	return s.present[col]
}

// Capabilities returns the availability flag of every known column.
func (s *Store) Capabilities() Capabilities {
	caps := make(Capabilities, len(Columns()))
	for _, col := range Columns() {
		caps[col] = s.present[col]
	}
	return caps
}

// Notices lists the optional columns missing from the source.
func (s *Store) Notices() []MissingColumnNotice {
	return slices.Clone(s.notices)
}

// Warnings summarizes the derivation warnings raised during load.
func (s *Store) Warnings() WarningSummary {
	summary := WarningSummary{
		Total:   s.warnings.Total,
		ByField: make(map[string]int, len(s.warnings.ByField)),
		Samples: slices.Clone(s.warnings.Samples),
	}
	for k, v := range s.warnings.ByField {
		summary.ByField[k] = v
	}
	return summary
}

// SkippedRows counts malformed source rows dropped by the reader.
func (s *Store) SkippedRows() int { return s.skipped }

// DistinctValues returns the non-null values of field in ascending order.
// Year fields sort numerically. The result is identical across calls.
func (s *Store) DistinctValues(field Field) []string {
	return slices.Clone(s.options[field])
}

// Capabilities flags which source columns are available.
type Capabilities map[Column]bool

// Has reports whether col is available. A nil Capabilities reports every
// column as available.
func (c Capabilities) Has(col Column) bool {
	if c == nil {
		return true
	}
	return c[col]
}

func buildOptions(records []Record, present map[Column]bool) map[Field][]string {
	options := make(map[Field][]string, len(Fields()))
	for _, field := range Fields() {
		if !present[field.Column()] {
			options[field] = []string{}
			continue
		}
		seen := make(map[string]struct{})
		values := []string{}
		add := func(value string) {
			if _, ok := seen[value]; ok {
				return
			}
			seen[value] = struct{}{}
			values = append(values, value)
		}
		for _, rec := range records {
			for _, value := range fieldValues(rec, field) {
				add(value)
			}
		}
		if field.numeric() {
			sort.Slice(values, func(i, j int) bool {
				a, _ := strconv.Atoi(values[i])
				b, _ := strconv.Atoi(values[j])
				return a < b
			})
		} else {
			sort.Strings(values)
		}
		options[field] = values
	}
	return options
}

func fieldValues(rec Record, field Field) []string {
	switch field {
	case FieldType:
		if rec.Type == Unknown {
			return nil
		}
		return []string{rec.Type.String()}
	case FieldGenre:
		return rec.GenreList
	case FieldCountry:
		return optional(rec.PrimaryCountry)
	case FieldRating:
		return optional(rec.Rating)
	case FieldReleaseYear:
		return optionalInt(rec.ReleaseYear)
	case FieldYearAdded:
		return optionalInt(rec.YearAdded)
	default:
		return nil
	}
}

func optional(value *string) []string {
	if value == nil {
		return nil
	}
	return []string{*value}
}

func optionalInt(value *int) []string {
	if value == nil {
		return nil
	}
	return []string{strconv.Itoa(*value)}
}
