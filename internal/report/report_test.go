package report_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"reelstats/internal/aggregate"
	"reelstats/internal/export"
	"reelstats/internal/report"
	"reelstats/internal/testsupport"
)

func TestResolveVariants(t *testing.T) {
	tests := []struct {
		variant  string
		sections []string
		want     []report.Section
	}{
		{variant: "durations", want: []report.Section{report.SectionLongest, report.SectionShortest, report.SectionAverage}},
		{variant: " WORDS ", want: []report.Section{report.SectionWords}},
		{variant: "", want: report.Sections()},
		{variant: "full", sections: []string{"Genres", "types", "genres"}, want: []report.Section{report.SectionGenres, report.SectionTypes}},
	}
	for _, tt := range tests {
		got, err := report.Resolve(tt.variant, tt.sections)
		if err != nil {
			t.Fatalf("Resolve(%q, %v) returned error: %v", tt.variant, tt.sections, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Resolve(%q, %v): got %v want %v", tt.variant, tt.sections, got, tt.want)
		}
	}
}

func TestResolveRejectsUnknownNames(t *testing.T) {
	if _, err := report.Resolve("dashboard", nil); err == nil || !strings.Contains(err.Error(), "overview") {
		t.Fatalf("expected unknown variant error listing variants, got %v", err)
	}
	if _, err := report.Resolve("full", []string{"maps"}); err == nil {
		t.Fatal("expected unknown section error")
	}
}

func TestRenderFullReport(t *testing.T) {
	store := testsupport.MustLoadSample(t)
	records := store.All()
	res := aggregate.Compute(records, aggregate.Options{TopN: 3, WordTopN: 3, Capabilities: store.Capabilities()})

	var buf bytes.Buffer
	err := report.Render(&buf, report.Input{
		Source:   "titles.csv",
		Total:    store.Len(),
		Result:   res,
		Preview:  export.Project(records[:2]),
		Sections: report.Sections(),
	}, report.Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"== Catalog titles.csv ==",
		"8 of 8 titles match",
		"== Movies vs TV Shows ==",
		"62.5%",
		"International TV Shows",
		"== Longest Movies ==",
		"Jeans",
		"121.25 minutes",
		"Blood & Water",
		"Release Year",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("expected no ANSI escapes without colorize")
	}
}

func TestRenderMarksUnavailableSections(t *testing.T) {
	store := testsupport.MustLoadCSV(t, "title,type\nA,Movie\n")
	res := aggregate.Compute(store.All(), aggregate.Options{Capabilities: store.Capabilities()})

	var buf bytes.Buffer
	err := report.Render(&buf, report.Input{
		Source:   "mini.csv",
		Total:    1,
		Result:   res,
		Notices:  store.Notices(),
		Sections: []report.Section{report.SectionGenres, report.SectionAverage, report.SectionTypes},
	}, report.Options{Colorize: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "unavailable: listed_in column missing from source") {
		t.Fatalf("expected unavailable genre notice:\n%s", out)
	}
	if !strings.Contains(out, "unavailable: duration column missing from source") {
		t.Fatalf("expected unavailable duration notice:\n%s", out)
	}
	if !strings.Contains(out, "rating column missing") {
		t.Fatalf("expected load notice for rating:\n%s", out)
	}
}

func TestRenderEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	err := report.Render(&buf, report.Input{
		Source:   "x.csv",
		Total:    8,
		Criteria: "type=Podcast",
		Result:   aggregate.Compute(nil, aggregate.Options{}),
		Sections: []report.Section{report.SectionGenres, report.SectionAverage, report.SectionPreview},
	}, report.Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"0 of 8 titles match (type=Podcast)", "(no data)", "no movies with a known duration", "(no titles)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}
