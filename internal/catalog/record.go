package catalog

import (
	"strings"
	"time"
)

// ContentType classifies a catalog title.
type ContentType string

const (
	Unknown ContentType = ""
	Movie   ContentType = "Movie"
	TVShow  ContentType = "TV Show"
)

// ParseContentType maps raw type labels onto a ContentType. Unrecognized
// labels yield Unknown.
func ParseContentType(value string) ContentType {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), ""))
	switch normalized {
	case "movie", "movies", "film":
		return Movie
	case "tvshow", "tvshows", "tv", "series", "show":
		return TVShow
	default:
		return Unknown
	}
}

// String returns the display label.
func (t ContentType) String() string {
	if t == Unknown {
		return "Unknown"
	}
	return string(t)
}

// ContentTypes lists the known content types in display order.
func ContentTypes() []ContentType {
	return []ContentType{Movie, TVShow}
}

// RawRecord is one source row before derivation. Nil pointers mean the cell
// was missing or blank.
type RawRecord struct {
	Title       *string
	Type        *string
	ReleaseYear *string
	DateAdded   *string
	Genres      *string
	Countries   *string
	Rating      *string
	Duration    *string
}

// Record is one catalog title with its raw and derived fields.
//
// Records handed out by a Store share their GenreList backing arrays with the
// store and must be treated as read-only.
type Record struct {
	Index int `json:"index"`

	Title        *string     `json:"title"`
	Type         ContentType `json:"type"`
	ReleaseYear  *int        `json:"release_year"`
	DateAdded    *time.Time  `json:"date_added"`
	GenresRaw    *string     `json:"listed_in"`
	CountriesRaw *string     `json:"country"`
	Rating       *string     `json:"rating"`
	DurationRaw  *string     `json:"duration"`

	YearAdded       *int     `json:"year_added"`
	MonthAdded      *int     `json:"month_added"`
	GenreList       []string `json:"genre_list"`
	PrimaryCountry  *string  `json:"primary_country"`
	DurationMinutes *float64 `json:"duration_minutes"`
}

// TitleOr returns the title or fallback when the title is missing.
func (r Record) TitleOr(fallback string) string {
	if r.Title == nil {
		return fallback
	}
	return *r.Title
}

// HasGenre reports whether genre appears in the record's genre list.
func (r Record) HasGenre(genre string) bool {
	for _, g := range r.GenreList {
		if g == genre {
			return true
		}
	}
	return false
}

// Column names a source column.
type Column string

const (
	ColumnTitle       Column = "title"
	ColumnType        Column = "type"
	ColumnReleaseYear Column = "release_year"
	ColumnDateAdded   Column = "date_added"
	ColumnGenres      Column = "listed_in"
	ColumnCountry     Column = "country"
	ColumnRating      Column = "rating"
	ColumnDuration    Column = "duration"
)

// Columns lists every recognized source column in canonical order.
func Columns() []Column {
	return []Column{
		ColumnTitle,
		ColumnType,
		ColumnReleaseYear,
		ColumnDateAdded,
		ColumnGenres,
		ColumnCountry,
		ColumnRating,
		ColumnDuration,
	}
}

// Required reports whether a load must fail when the column is absent.
func (c Column) Required() bool {
	return c == ColumnTitle || c == ColumnType
}

// columnAliases maps alternate header spellings onto canonical columns.
var columnAliases = map[string]Column{
	"genres":       ColumnGenres,
	"genre":        ColumnGenres,
	"countries":    ColumnCountry,
	"content_type": ColumnType,
	"show_type":    ColumnType,
	"year":         ColumnReleaseYear,
}

// ResolveColumn maps a header cell onto a known column.
func ResolveColumn(header string) (Column, bool) {
	key := toSnakeCase(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	for _, col := range Columns() {
		if string(col) == key {
			return col, true
		}
	}
	if col, ok := columnAliases[key]; ok {
		return col, true
	}
	return "", false
}

func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Field names a record attribute that has a distinct-value option list.
type Field string

const (
	FieldType        Field = "type"
	FieldGenre       Field = "genre"
	FieldCountry     Field = "country"
	FieldRating      Field = "rating"
	FieldReleaseYear Field = "release_year"
	FieldYearAdded   Field = "year_added"
)

// Fields lists every field with an option list.
func Fields() []Field {
	return []Field{FieldType, FieldGenre, FieldCountry, FieldRating, FieldReleaseYear, FieldYearAdded}
}

// ParseField resolves a user-supplied field name.
func ParseField(value string) (Field, bool) {
	key := toSnakeCase(strings.TrimSpace(value))
	switch key {
	case "genres", "listed_in":
		key = string(FieldGenre)
	case "countries", "primary_country":
		key = string(FieldCountry)
	case "year", "release":
		key = string(FieldReleaseYear)
	case "added":
		key = string(FieldYearAdded)
	}
	for _, f := range Fields() {
		if string(f) == key {
			return f, true
		}
	}
	return "", false
}

// Source column the field is derived from.
func (f Field) Column() Column {
	switch f {
	case FieldType:
		return ColumnType
	case FieldGenre:
		return ColumnGenres
	case FieldCountry:
		return ColumnCountry
	case FieldRating:
		return ColumnRating
	case FieldReleaseYear:
		return ColumnReleaseYear
	case FieldYearAdded:
		return ColumnDateAdded
	default:
		return ""
	}
}

func (f Field) numeric() bool {
	return f == FieldReleaseYear || f == FieldYearAdded
}
