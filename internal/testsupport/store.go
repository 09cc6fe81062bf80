package testsupport

import (
	"context"
	"testing"

	"reelstats/internal/catalog"
	"reelstats/internal/logging"
)

// SampleCSV is a small catalog covering movies, TV shows, multi-valued
// genres and countries, and a few malformed values.
const SampleCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,"September 25, 2021",2020,PG-13,90 min,Documentaries,A documentary.
s2,TV Show,Blood & Water,,Ama Qamata,South Africa,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas, TV Mysteries",A drama.
s3,TV Show,Ganglands,Julien Leclercq,Sami Bouajila,,"September 24, 2021",2021,TV-MA,1 Season,"Crime TV Shows, International TV Shows, TV Action & Adventure",Crime.
s4,Movie,Sankofa,Haile Gerima,Kofi Ghanaba,"United States, Ghana, Burkina Faso, United Kingdom, Germany, Ethiopia","September 24, 2021",1993,TV-MA,125 min,"Dramas, Independent Movies, International Movies",Historic.
s5,Movie,The Starling,Theodore Melfi,Melissa McCarthy,United States,"September 24, 2021",2021,PG-13,104 min,"Comedies, Dramas",A comedy.
s6,Movie,Jeans,S. Shankar,Prashanth,India,not a date,1998,TV-14,166 min,"Comedies, International Movies, Romantic Movies",Romance.
s7,TV Show,Kota Factory,,Mayur More,India,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, Romantic TV Shows, TV Comedies",Coaching.
s8,Movie,Untitled Short,,,,,,,,,Nothing known.
`

// MustLoadCSV writes content to a temp CSV file and loads it.
func MustLoadCSV(t testing.TB, content string) *catalog.Store {
	t.Helper()

	path := WriteCatalogCSV(t, content)
	store, err := catalog.Load(context.Background(), catalog.NewCSVSource(path, ','), catalog.WithLogger(logging.NewNop()))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return store
}

// MustLoadSample loads SampleCSV.
func MustLoadSample(t testing.TB) *catalog.Store {
	t.Helper()
	return MustLoadCSV(t, SampleCSV)
}
