package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing date_added.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2 January 2006",
	"2 Jan 2006",
}

var digitRun = regexp.MustCompile(`[0-9]+`)

const (
	genreDelimiter   = ", "
	countryDelimiter = ","

	// Release years outside this window are treated as unparseable.
	minYear = 1
	maxYear = 9999
)

// Derive computes a Record from a raw row. It never fails: values that cannot
// be derived are left nil and reported as warnings. Warning indices are zero;
// the caller assigns record positions.
func Derive(raw RawRecord) (Record, []Warning) {
	var warnings []Warning
	warn := func(field, value, reason string) {
		warnings = append(warnings, Warning{Field: field, Raw: value, Reason: reason})
	}

	rec := Record{
		Title:        cleanString(raw.Title),
		GenresRaw:    cleanString(raw.Genres),
		CountriesRaw: cleanString(raw.Countries),
		Rating:       cleanString(raw.Rating),
		DurationRaw:  cleanString(raw.Duration),
	}
	if typ := cleanString(raw.Type); typ != nil {
		rec.Type = ParseContentType(*typ)
		if rec.Type == Unknown {
			warn(string(ColumnType), *typ, "unrecognized content type")
		}
	}

	if value := cleanString(raw.ReleaseYear); value != nil {
		if year, ok := parseYear(*value); ok {
			rec.ReleaseYear = &year
		} else {
			warn(string(ColumnReleaseYear), *value, "not an integer year in 1-9999")
		}
	}

	if value := cleanString(raw.DateAdded); value != nil {
		if added, ok := parseDate(*value); ok {
			year, month := added.Year(), int(added.Month())
			rec.DateAdded = &added
			rec.YearAdded = &year
			rec.MonthAdded = &month
		} else {
			warn(string(ColumnDateAdded), *value, "unparsable date")
		}
	}

	rec.GenreList = SplitGenres(rec.GenresRaw)
	rec.PrimaryCountry = PrimaryCountry(rec.CountriesRaw)

	if rec.DurationRaw != nil {
		minutes, ok := LeadingNumber(*rec.DurationRaw)
		switch {
		case !ok:
			warn(string(ColumnDuration), *rec.DurationRaw, "no numeric value")
		case rec.Type == Movie:
			rec.DurationMinutes = &minutes
		}
	}

	return rec, warnings
}

// SplitGenres splits a comma-space separated genre list, dropping blanks.
func SplitGenres(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	parts := strings.Split(*raw, genreDelimiter)
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		genres = append(genres, part)
	}
	return genres
}

// PrimaryCountry returns the first listed country, or nil.
func PrimaryCountry(raw *string) *string {
	if raw == nil {
		return nil
	}
	first, _, _ := strings.Cut(*raw, countryDelimiter)
	first = strings.TrimSpace(first)
	if first == "" {
		return nil
	}
	return &first
}

// LeadingNumber returns the first run of decimal digits in value.
func LeadingNumber(value string) (float64, bool) {
	match := digitRun.FindString(value)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseYear(value string) (int, bool) {
	if year, err := strconv.Atoi(value); err == nil {
		return year, year >= minYear && year <= maxYear
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) || f < minYear || f > maxYear {
		return 0, false
	}
	return int(f), true
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cleanString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
