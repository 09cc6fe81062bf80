package textutil

import (
	"reflect"
	"testing"
)

func TestWordsSplitsOnWhitespaceOnly(t *testing.T) {
	f := NewFolder()
	got := f.Words("  Love, Death & ROBOTS  ")
	want := []string{"love,", "death", "&", "robots"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestTrimmedWordsDropsPunctuation(t *testing.T) {
	f := NewFolder()
	got := f.TrimmedWords("  Love, Death & ROBOTS  ")
	want := []string{"love", "death", "robots"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimmedWords() = %v, want %v", got, want)
	}
}

func TestWordsUnicodeFolding(t *testing.T) {
	f := NewFolder()
	a := f.Words("ÉCOLE")
	b := f.Words("école")
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Errorf("expected equal folding, got %v and %v", a, b)
	}
}

func TestWordsEmpty(t *testing.T) {
	f := NewFolder()
	if got := f.Words("   "); len(got) != 0 {
		t.Errorf("Words(blank) = %v, want empty", got)
	}
	if got := f.Words("- : -"); len(got) != 3 {
		t.Errorf("Words(punctuation) = %v, want 3 tokens", got)
	}
	if got := f.TrimmedWords("- : -"); len(got) != 0 {
		t.Errorf("TrimmedWords(punctuation) = %v, want empty", got)
	}
}

func TestTrimmedWordsKeepsInnerPunctuation(t *testing.T) {
	f := NewFolder()
	got := f.TrimmedWords("Ocean's Eleven (2001)")
	want := []string{"ocean's", "eleven", "2001"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimmedWords() = %v, want %v", got, want)
	}
}

func TestStopWords(t *testing.T) {
	f := NewFolder()
	set := f.StopWords([]string{"The", " of ", ""})
	if len(set) != 2 {
		t.Fatalf("StopWords() size = %d, want 2", len(set))
	}
	for _, word := range []string{"the", "of"} {
		if _, ok := set[word]; !ok {
			t.Errorf("expected %q in stop words", word)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"release_year": "Release Year",
		"genres":       "Genres",
		"":             "",
		"year_added":   "Year Added",
	}
	for in, want := range tests {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}
