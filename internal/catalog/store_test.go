package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"reelstats/internal/catalog"
	"reelstats/internal/logging"
	"reelstats/internal/testsupport"
)

func TestLoadSampleCatalog(t *testing.T) {
	store := testsupport.MustLoadSample(t)

	if store.Len() != 8 {
		t.Fatalf("unexpected record count: got %d want 8", store.Len())
	}
	if store.ID() == "" {
		t.Fatal("expected load id")
	}
	records := store.All()
	for i, rec := range records {
		if rec.Index != i {
			t.Fatalf("record %d has index %d", i, rec.Index)
		}
	}
	if got := records[0].TitleOr(""); got != "Dick Johnson Is Dead" {
		t.Fatalf("unexpected first title: %q", got)
	}
	if records[2].PrimaryCountry != nil {
		t.Fatalf("expected nil country for Ganglands, got %q", *records[2].PrimaryCountry)
	}
	if records[5].YearAdded != nil {
		t.Fatalf("expected nil year added for unparsable date")
	}
	if len(store.Notices()) != 0 {
		t.Fatalf("unexpected notices: %v", store.Notices())
	}
	warnings := store.Warnings()
	if warnings.Total != 1 || warnings.ByField["date_added"] != 1 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}
	if warnings.Samples[0].Index != 5 {
		t.Fatalf("unexpected warning index: %d", warnings.Samples[0].Index)
	}
}

func TestLoadAssignsFreshIDs(t *testing.T) {
	first := testsupport.MustLoadSample(t)
	second := testsupport.MustLoadSample(t)
	if first.ID() == second.ID() {
		t.Fatalf("expected distinct load ids, both %q", first.ID())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store := testsupport.MustLoadSample(t)
	records := store.All()
	records[0] = catalog.Record{}
	if store.All()[0].Title == nil {
		t.Fatal("mutating All() result changed the store")
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := testsupport.WriteCatalogCSV(t, "show_id,title,release_year\ns1,Alpha,2020\n")
	_, err := catalog.Load(context.Background(), catalog.NewCSVSource(path, ','))
	if err == nil {
		t.Fatal("expected error for missing type column")
	}
	var dsErr *catalog.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %T", err)
	}
	if !errors.Is(err, catalog.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if dsErr.Source != path {
		t.Fatalf("unexpected source in error: %q", dsErr.Source)
	}
}

func TestLoadEmptySource(t *testing.T) {
	tests := map[string]string{
		"header only": "title,type\n",
		"no content":  "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := testsupport.WriteCatalogCSV(t, content)
			_, err := catalog.Load(context.Background(), catalog.NewCSVSource(path, ','))
			if !errors.Is(err, catalog.ErrEmptySource) {
				t.Fatalf("expected ErrEmptySource, got %v", err)
			}
		})
	}
}

func TestLoadUnreadableSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := catalog.Load(context.Background(), catalog.NewCSVSource(path, ','))
	var dsErr *catalog.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestLoadNilSource(t *testing.T) {
	if _, err := catalog.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadMissingOptionalColumn(t *testing.T) {
	store := testsupport.MustLoadCSV(t, "title,type,release_year,listed_in\nAlpha,Movie,2020,Dramas\nBeta,TV Show,2019,\"Comedies, Dramas\"\n")

	if store.Has(catalog.ColumnRating) {
		t.Fatal("expected rating to be unavailable")
	}
	if !store.Has(catalog.ColumnGenres) {
		t.Fatal("expected genres to be available")
	}
	caps := store.Capabilities()
	if caps.Has(catalog.ColumnDuration) || !caps.Has(catalog.ColumnReleaseYear) {
		t.Fatalf("unexpected capabilities: %v", caps)
	}
	missing := map[catalog.Column]bool{}
	for _, notice := range store.Notices() {
		missing[notice.Column] = true
		if notice.Impact == "" {
			t.Fatalf("notice for %s lacks impact", notice.Column)
		}
	}
	for _, col := range []catalog.Column{catalog.ColumnDateAdded, catalog.ColumnCountry, catalog.ColumnRating, catalog.ColumnDuration} {
		if !missing[col] {
			t.Fatalf("expected notice for %s, got %v", col, store.Notices())
		}
	}
	if got := store.DistinctValues(catalog.FieldRating); len(got) != 0 {
		t.Fatalf("expected no rating options, got %v", got)
	}
}

func TestNilCapabilitiesReportEverything(t *testing.T) {
	var caps catalog.Capabilities
	if !caps.Has(catalog.ColumnRating) {
		t.Fatal("nil capabilities should report columns as available")
	}
}

func TestDistinctValues(t *testing.T) {
	store := testsupport.MustLoadSample(t)

	tests := []struct {
		field catalog.Field
		want  []string
	}{
		{field: catalog.FieldType, want: []string{"Movie", "TV Show"}},
		{field: catalog.FieldRating, want: []string{"PG-13", "TV-14", "TV-MA"}},
		{field: catalog.FieldCountry, want: []string{"India", "South Africa", "United States"}},
		{field: catalog.FieldReleaseYear, want: []string{"1993", "1998", "2020", "2021"}},
		{field: catalog.FieldYearAdded, want: []string{"2021"}},
	}
	for _, tt := range tests {
		got := store.DistinctValues(tt.field)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("DistinctValues(%s): got %v want %v", tt.field, got, tt.want)
		}
		again := store.DistinctValues(tt.field)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("DistinctValues(%s) not stable: %v vs %v", tt.field, got, again)
		}
	}

	genres := store.DistinctValues(catalog.FieldGenre)
	if len(genres) != 13 {
		t.Fatalf("unexpected genre count: got %d (%v)", len(genres), genres)
	}
	if genres[0] != "Comedies" {
		t.Fatalf("expected sorted genres, got %v", genres)
	}
}

func TestDistinctValuesNumericOrder(t *testing.T) {
	store := testsupport.MustLoadCSV(t, "title,type,release_year\nA,Movie,2001\nB,Movie,999\nC,Movie,10000\n")
	got := store.DistinctValues(catalog.FieldReleaseYear)
	want := []string{"999", "2001", "10000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLoadFromSQLite(t *testing.T) {
	path := testsupport.WriteSQLite(t, filepath.Join(t.TempDir(), "catalog.db"), "titles",
		[]string{"title", "type", "release_year", "listed_in", "country", "rating", "duration", "date_added"},
		[][]any{
			{"Alpha", "Movie", 2015, "Dramas, Comedies", "France, Belgium", "R", "120 min", "2019-05-01"},
			{"Beta", "TV Show", 2020, "TV Dramas", nil, "TV-MA", "3 Seasons", nil},
		},
	)

	src, err := catalog.OpenSource(path, catalog.SourceOptions{Format: catalog.FormatAuto})
	if err != nil {
		t.Fatalf("OpenSource: %v", err)
	}
	store, err := catalog.Load(context.Background(), src, catalog.WithLogger(logging.NewNop()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("unexpected record count: %d", store.Len())
	}
	records := store.All()
	if records[0].ReleaseYear == nil || *records[0].ReleaseYear != 2015 {
		t.Fatalf("unexpected release year: %v", records[0].ReleaseYear)
	}
	if records[0].DurationMinutes == nil || *records[0].DurationMinutes != 120 {
		t.Fatalf("unexpected duration: %v", records[0].DurationMinutes)
	}
	if records[0].YearAdded == nil || *records[0].YearAdded != 2019 {
		t.Fatalf("unexpected year added: %v", records[0].YearAdded)
	}
	if records[1].PrimaryCountry != nil || records[1].DateAdded != nil {
		t.Fatal("expected NULL cells to derive to nil")
	}
	if got := store.DistinctValues(catalog.FieldCountry); !reflect.DeepEqual(got, []string{"France"}) {
		t.Fatalf("unexpected countries: %v", got)
	}
}
