package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelstats/internal/catalog"
	"reelstats/internal/filter"
)

const (
	flagType      = "type"
	flagGenre     = "genre"
	flagCountry   = "country"
	flagRating    = "rating"
	flagAddedYear = "added-year"
	flagYearMin   = "year-min"
	flagYearMax   = "year-max"
)

// criteriaFlags binds the filter flags shared by every reporting command. A
// flag given with an empty value selects nothing; an omitted flag leaves its
// category unconstrained.
type criteriaFlags struct {
	types      []string
	genres     []string
	countries  []string
	ratings    []string
	addedYears []string
	yearMin    int
	yearMax    int
}

func (f *criteriaFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.types, flagType, nil, "Content types to include (Movie, TV Show)")
	flags.StringSliceVar(&f.genres, flagGenre, nil, "Genres to include; a title matches if it lists any of them")
	flags.StringSliceVar(&f.countries, flagCountry, nil, "Primary countries to include")
	flags.StringSliceVar(&f.ratings, flagRating, nil, "Ratings to include")
	flags.StringSliceVar(&f.addedYears, flagAddedYear, nil, "Years the title was added to include")
	flags.IntVar(&f.yearMin, flagYearMin, 0, "Earliest release year (inclusive)")
	flags.IntVar(&f.yearMax, flagYearMax, 0, "Latest release year (inclusive)")
}

// criteria turns the parsed flags into filter criteria. Values are matched
// case-insensitively against the catalog's options and rewritten to their
// catalog spelling. Filters on columns the source lacks are rejected.
func (f *criteriaFlags) criteria(cmd *cobra.Command, store *catalog.Store) (filter.Criteria, error) {
	flags := cmd.Flags()
	var c filter.Criteria

	if flags.Changed(flagType) {
		c.Types = []catalog.ContentType{}
		for _, raw := range cleanValues(f.types) {
			typ := catalog.ParseContentType(raw)
			if typ == catalog.Unknown {
				return filter.Criteria{}, fmt.Errorf("--%s: unknown content type %q (want Movie or TV Show)", flagType, raw)
			}
			c.Types = append(c.Types, typ)
		}
	}
	if flags.Changed(flagGenre) {
		c.Genres = canonicalize(f.genres, store.DistinctValues(catalog.FieldGenre))
	}
	if flags.Changed(flagCountry) {
		c.Countries = canonicalize(f.countries, store.DistinctValues(catalog.FieldCountry))
	}
	if flags.Changed(flagRating) {
		c.Ratings = canonicalize(f.ratings, store.DistinctValues(catalog.FieldRating))
	}
	if flags.Changed(flagAddedYear) {
		c.AddedYears = []int{}
		for _, raw := range cleanValues(f.addedYears) {
			year, err := strconv.Atoi(raw)
			if err != nil {
				return filter.Criteria{}, fmt.Errorf("--%s: %q is not a year", flagAddedYear, raw)
			}
			c.AddedYears = append(c.AddedYears, year)
		}
	}
	if flags.Changed(flagYearMin) || flags.Changed(flagYearMax) {
		// A bound left unset stays open.
		r := filter.YearRange{Min: math.MinInt, Max: math.MaxInt}
		if flags.Changed(flagYearMin) {
			r.Min = f.yearMin
		}
		if flags.Changed(flagYearMax) {
			r.Max = f.yearMax
		}
		c.YearRange = &r
	}

	for _, col := range c.Columns() {
		if !store.Has(col) {
			return filter.Criteria{}, fmt.Errorf("filter on %s unavailable: source %s has no %q column", columnFlag(col), store.SourceName(), col)
		}
	}
	if err := c.Validate(); err != nil {
		return filter.Criteria{}, err
	}
	return c, nil
}

func columnFlag(col catalog.Column) string {
	switch col {
	case catalog.ColumnType:
		return "--" + flagType
	case catalog.ColumnGenres:
		return "--" + flagGenre
	case catalog.ColumnCountry:
		return "--" + flagCountry
	case catalog.ColumnRating:
		return "--" + flagRating
	case catalog.ColumnDateAdded:
		return "--" + flagAddedYear
	case catalog.ColumnReleaseYear:
		return "--" + flagYearMin + "/--" + flagYearMax
	default:
		return string(col)
	}
}

// cleanValues trims entries and drops blanks. The result is never nil.
func cleanValues(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func canonicalize(values, options []string) []string {
	out := cleanValues(values)
	for i, v := range out {
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				out[i] = opt
				break
			}
		}
	}
	return out
}

// describeCriteria renders criteria for report headers.
func describeCriteria(c filter.Criteria) string {
	var parts []string
	add := func(name string, values []string) {
		if values == nil {
			return
		}
		if len(values) == 0 {
			parts = append(parts, name+"=(none)")
			return
		}
		parts = append(parts, name+"="+strings.Join(values, "|"))
	}
	if c.Types != nil {
		names := make([]string, len(c.Types))
		for i, t := range c.Types {
			names[i] = t.String()
		}
		add("type", names)
	}
	if c.YearRange != nil {
		parts = append(parts, describeYearRange(*c.YearRange))
	}
	if c.AddedYears != nil {
		years := make([]string, len(c.AddedYears))
		for i, y := range c.AddedYears {
			years[i] = strconv.Itoa(y)
		}
		add("added", years)
	}
	add("genre", c.Genres)
	add("country", c.Countries)
	add("rating", c.Ratings)
	return strings.Join(parts, "; ")
}

func describeYearRange(r filter.YearRange) string {
	switch {
	case r.Min == math.MinInt && r.Max == math.MaxInt:
		return "year=any"
	case r.Min == math.MinInt:
		return fmt.Sprintf("year<=%d", r.Max)
	case r.Max == math.MaxInt:
		return fmt.Sprintf("year>=%d", r.Min)
	default:
		return fmt.Sprintf("year=%d-%d", r.Min, r.Max)
	}
}
