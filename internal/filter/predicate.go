package filter

import (
	"reelstats/internal/catalog"
)

// Predicate tests records against a fixed set of criteria.
type Predicate struct {
	types      map[catalog.ContentType]struct{}
	genres     map[string]struct{}
	countries  map[string]struct{}
	ratings    map[string]struct{}
	addedYears map[int]struct{}
	years      *YearRange
}

// Build compiles criteria into a Predicate. It fails when the year range is
// inverted.
func Build(c Criteria) (Predicate, error) {
	if err := c.Validate(); err != nil {
		return Predicate{}, err
	}
	p := Predicate{
		types:      toSet(c.Types),
		genres:     toSet(c.Genres),
		countries:  toSet(c.Countries),
		ratings:    toSet(c.Ratings),
		addedYears: toSet(c.AddedYears),
	}
	if c.YearRange != nil {
		r := *c.YearRange
		p.years = &r
	}
	return p, nil
}

// MatchAll returns a Predicate with no constraints.
func MatchAll() Predicate {
	return Predicate{}
}

// Test reports whether rec satisfies every set category.
func (p Predicate) Test(rec catalog.Record) bool {
	if p.types != nil {
		if _, ok := p.types[rec.Type]; !ok {
			return false
		}
	}
	if p.years != nil {
		if rec.ReleaseYear == nil || !p.years.contains(*rec.ReleaseYear) {
			return false
		}
	}
	if p.addedYears != nil && !containsPtr(p.addedYears, rec.YearAdded) {
		return false
	}
	if p.genres != nil && !anyIn(p.genres, rec.GenreList) {
		return false
	}
	if p.countries != nil && !containsPtr(p.countries, rec.PrimaryCountry) {
		return false
	}
	if p.ratings != nil && !containsPtr(p.ratings, rec.Rating) {
		return false
	}
	return true
}

// Apply returns the records matching p in their original order. The input is
// not modified and the result never aliases it.
func Apply(records []catalog.Record, p Predicate) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if p.Test(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// toSet keeps the nil/empty distinction: nil yields nil, empty yields an
// empty non-nil set that matches nothing.
func toSet[T comparable](values []T) map[T]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func containsPtr[T comparable](set map[T]struct{}, value *T) bool {
	if value == nil {
		return false
	}
	_, ok := set[*value]
	return ok
}

func anyIn(set map[string]struct{}, values []string) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
