package aggregate

import (
	"reelstats/internal/catalog"
)

// View names one aggregate view.
type View string

const (
	ViewTypes     View = "types"
	ViewYears     View = "years"
	ViewAdded     View = "added"
	ViewGenres    View = "genres"
	ViewRatings   View = "ratings"
	ViewCountries View = "countries"
	ViewLongest   View = "longest"
	ViewShortest  View = "shortest"
	ViewAverage   View = "average"
	ViewWords     View = "words"
)

// Views lists every view in presentation order.
func Views() []View {
	return []View{
		ViewTypes, ViewYears, ViewAdded, ViewGenres, ViewRatings,
		ViewCountries, ViewLongest, ViewShortest, ViewAverage, ViewWords,
	}
}

// Column is the source column the view depends on.
func (v View) Column() catalog.Column {
	switch v {
	case ViewTypes:
		return catalog.ColumnType
	case ViewYears:
		return catalog.ColumnReleaseYear
	case ViewAdded:
		return catalog.ColumnDateAdded
	case ViewGenres:
		return catalog.ColumnGenres
	case ViewRatings:
		return catalog.ColumnRating
	case ViewCountries:
		return catalog.ColumnCountry
	case ViewLongest, ViewShortest, ViewAverage:
		return catalog.ColumnDuration
	case ViewWords:
		return catalog.ColumnTitle
	default:
		return ""
	}
}

// Options tunes Compute.
type Options struct {
	// TopN bounds ranked views; <= 0 means unbounded.
	TopN int
	// WordTopN bounds the word list; <= 0 means unbounded.
	WordTopN  int
	StopWords []string
	// TrimPunct strips punctuation from title words before counting.
	TrimPunct bool
	// Capabilities marks available columns. Nil treats all as available.
	Capabilities catalog.Capabilities
}

// Result bundles every view for one record set.
type Result struct {
	Total       int            `json:"total"`
	Types       []TypeCount    `json:"types"`
	Years       []YearCount    `json:"years"`
	Added       []YearCount    `json:"added"`
	Genres      []Count        `json:"genres"`
	Ratings     []Count        `json:"ratings"`
	Countries   []Count        `json:"countries"`
	Longest     []MovieRuntime `json:"longest"`
	Shortest    []MovieRuntime `json:"shortest"`
	AverageMins *float64       `json:"average_minutes"`
	Words       []Count        `json:"words"`
	// Unavailable lists views skipped because their column is missing.
	Unavailable []View `json:"unavailable,omitempty"`
}

// Available reports whether v was computed.
func (r Result) Available(v View) bool {
	for _, u := range r.Unavailable {
		if u == v {
			return false
		}
	}
	return true
}

// Compute builds every view over records.
func Compute(records []catalog.Record, opts Options) Result {
	res := Result{
		Total:     len(records),
		Types:     []TypeCount{},
		Years:     []YearCount{},
		Added:     []YearCount{},
		Genres:    []Count{},
		Ratings:   []Count{},
		Countries: []Count{},
		Longest:   []MovieRuntime{},
		Shortest:  []MovieRuntime{},
		Words:     []Count{},
	}
	for _, view := range Views() {
		if !opts.Capabilities.Has(view.Column()) {
			res.Unavailable = append(res.Unavailable, view)
			continue
		}
		switch view {
		case ViewTypes:
			res.Types = TypeBreakdown(records)
		case ViewYears:
			res.Years = CountByYear(records)
		case ViewAdded:
			res.Added = AddedByYear(records)
		case ViewGenres:
			res.Genres = TopGenres(records, opts.TopN)
		case ViewRatings:
			res.Ratings = TopRatings(records, opts.TopN)
		case ViewCountries:
			res.Countries = TopCountries(records, opts.TopN)
		case ViewLongest:
			res.Longest = LongestMovies(records, opts.TopN)
		case ViewShortest:
			res.Shortest = ShortestMovies(records, opts.TopN)
		case ViewAverage:
			if avg, ok := AverageMovieDuration(records); ok {
				res.AverageMins = &avg
			}
		case ViewWords:
			res.Words = titleWords(records, opts.WordTopN, opts.StopWords, opts.TrimPunct)
		}
	}
	return res
}
