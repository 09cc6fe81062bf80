package filter

import (
	"fmt"
	"slices"

	"reelstats/internal/catalog"
)

// YearRange bounds release_year inclusively on both ends.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r YearRange) contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Criteria holds the user's filter selection.
type Criteria struct {
	Types      []catalog.ContentType `json:"types,omitempty"`
	Genres     []string              `json:"genres,omitempty"`
	Countries  []string              `json:"countries,omitempty"`
	Ratings    []string              `json:"ratings,omitempty"`
	AddedYears []int                 `json:"added_years,omitempty"`
	YearRange  *YearRange            `json:"year_range,omitempty"`
}

// IsZero reports whether no category is set.
func (c Criteria) IsZero() bool {
	return c.Types == nil && c.Genres == nil && c.Countries == nil &&
		c.Ratings == nil && c.AddedYears == nil && c.YearRange == nil
}

// Columns lists the source columns the set categories depend on.
func (c Criteria) Columns() []catalog.Column {
	var cols []catalog.Column
	if c.Types != nil {
		cols = append(cols, catalog.ColumnType)
	}
	if c.YearRange != nil {
		cols = append(cols, catalog.ColumnReleaseYear)
	}
	if c.AddedYears != nil {
		cols = append(cols, catalog.ColumnDateAdded)
	}
	if c.Genres != nil {
		cols = append(cols, catalog.ColumnGenres)
	}
	if c.Countries != nil {
		cols = append(cols, catalog.ColumnCountry)
	}
	if c.Ratings != nil {
		cols = append(cols, catalog.ColumnRating)
	}
	return cols
}

// Validate reports criteria that cannot form a predicate.
func (c Criteria) Validate() error {
	if c.YearRange != nil && c.YearRange.Min > c.YearRange.Max {
		return fmt.Errorf("year range: min %d exceeds max %d", c.YearRange.Min, c.YearRange.Max)
	}
	return nil
}

// Clone returns a deep copy. Nil categories stay nil.
func (c Criteria) Clone() Criteria {
	out := Criteria{
		Types:      slices.Clone(c.Types),
		Genres:     slices.Clone(c.Genres),
		Countries:  slices.Clone(c.Countries),
		Ratings:    slices.Clone(c.Ratings),
		AddedYears: slices.Clone(c.AddedYears),
	}
	if c.YearRange != nil {
		r := *c.YearRange
		out.YearRange = &r
	}
	return out
}
