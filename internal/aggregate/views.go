package aggregate

import (
	"sort"

	"reelstats/internal/catalog"
	"reelstats/internal/textutil"
)

// TypeCount is the number of records of one content type.
type TypeCount struct {
	Type  catalog.ContentType `json:"type"`
	Count int                 `json:"count"`
}

// YearCount is the number of records for one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// MovieRuntime names a movie and its duration in minutes.
type MovieRuntime struct {
	Title   string  `json:"title"`
	Minutes float64 `json:"minutes"`
}

// UntitledLabel stands in for records without a title.
const UntitledLabel = "(untitled)"

// TypeBreakdown counts records per content type in Movie, TV Show, Unknown
// order. Types with no records are omitted.
func TypeBreakdown(records []catalog.Record) []TypeCount {
	counts := make(map[catalog.ContentType]int, 3)
	for _, rec := range records {
		counts[rec.Type]++
	}
	out := []TypeCount{}
	for _, typ := range append(catalog.ContentTypes(), catalog.Unknown) {
		if n := counts[typ]; n > 0 {
			out = append(out, TypeCount{Type: typ, Count: n})
		}
	}
	return out
}

// CountByYear counts records per release year in ascending year order.
// Records without a release year are skipped and missing years are not
// zero-filled.
func CountByYear(records []catalog.Record) []YearCount {
	return countYears(records, func(rec catalog.Record) *int { return rec.ReleaseYear })
}

// AddedByYear counts records per year added to the catalog, ascending.
func AddedByYear(records []catalog.Record) []YearCount {
	return countYears(records, func(rec catalog.Record) *int { return rec.YearAdded })
}

func countYears(records []catalog.Record, year func(catalog.Record) *int) []YearCount {
	counts := make(map[int]int)
	for _, rec := range records {
		if y := year(rec); y != nil {
			counts[*y]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopGenres ranks genres. A record adds one to each of its genres. Only the
// first n entries are kept; n <= 0 returns every genre.
func TopGenres(records []catalog.Record, n int) []Count {
	c := newCounter()
	for _, rec := range records {
		for _, genre := range rec.GenreList {
			c.add(genre)
		}
	}
	return c.top(n)
}

// TopRatings ranks ratings, one increment per record with a rating. n <= 0
// returns every rating.
func TopRatings(records []catalog.Record, n int) []Count {
	return topOf(records, n, func(rec catalog.Record) *string { return rec.Rating })
}

// TopCountries ranks primary countries, one increment per record. n <= 0
// returns every country.
func TopCountries(records []catalog.Record, n int) []Count {
	return topOf(records, n, func(rec catalog.Record) *string { return rec.PrimaryCountry })
}

func topOf(records []catalog.Record, n int, value func(catalog.Record) *string) []Count {
	c := newCounter()
	for _, rec := range records {
		if v := value(rec); v != nil {
			c.add(*v)
		}
	}
	return c.top(n)
}

// LongestMovies returns the n longest movies with a known duration, longest
// first. Equal durations keep catalog order. n <= 0 returns every movie.
func LongestMovies(records []catalog.Record, n int) []MovieRuntime {
	movies := runtimes(records)
	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Minutes > movies[j].Minutes })
	return truncate(movies, n)
}

// ShortestMovies returns the n shortest movies with a known duration,
// shortest first. Equal durations keep catalog order. n <= 0 returns every
// movie.
func ShortestMovies(records []catalog.Record, n int) []MovieRuntime {
	movies := runtimes(records)
	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Minutes < movies[j].Minutes })
	return truncate(movies, n)
}

func runtimes(records []catalog.Record) []MovieRuntime {
	out := []MovieRuntime{}
	for _, rec := range records {
		if rec.Type != catalog.Movie || rec.DurationMinutes == nil {
			continue
		}
		out = append(out, MovieRuntime{Title: rec.TitleOr(UntitledLabel), Minutes: *rec.DurationMinutes})
	}
	return out
}

// AverageMovieDuration is the mean duration of movies with a known duration.
// ok is false when there are none.
func AverageMovieDuration(records []catalog.Record) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, rec := range records {
		if rec.Type != catalog.Movie || rec.DurationMinutes == nil {
			continue
		}
		sum += *rec.DurationMinutes
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// TitleWordFrequencies ranks case-folded title words, split on whitespace
// with punctuation kept. Records without a title are skipped, as are words in
// stopWords (compared after folding). n <= 0 returns every word.
func TitleWordFrequencies(records []catalog.Record, n int, stopWords []string) []Count {
	return titleWords(records, n, stopWords, false)
}

// TrimmedTitleWordFrequencies is TitleWordFrequencies with leading and
// trailing punctuation stripped from each word before counting.
func TrimmedTitleWordFrequencies(records []catalog.Record, n int, stopWords []string) []Count {
	return titleWords(records, n, stopWords, true)
}

func titleWords(records []catalog.Record, n int, stopWords []string, trim bool) []Count {
	folder := textutil.NewFolder()
	split := folder.Words
	if trim {
		split = folder.TrimmedWords
	}
	stop := folder.StopWords(stopWords)
	c := newCounter()
	for _, rec := range records {
		if rec.Title == nil {
			continue
		}
		for _, word := range split(*rec.Title) {
			if _, skip := stop[word]; skip {
				continue
			}
			c.add(word)
		}
	}
	return c.top(n)
}
