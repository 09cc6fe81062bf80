package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Folder case-folds text for caseless comparison. Not safe for concurrent use.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Folder using Unicode full case folding.
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// Words splits text on whitespace and returns the folded tokens unchanged
// otherwise, punctuation included.
func (f *Folder) Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, f.Fold(field))
	}
	return words
}

// TrimmedWords is Words with leading and trailing punctuation removed from
// each token. Tokens left empty are dropped.
func (f *Folder) TrimmedWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := TrimPunct(field); token != "" {
			words = append(words, f.Fold(token))
		}
	}
	return words
}

// StopWords builds a lookup set of folded stop words.
func (f *Folder) StopWords(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		set[f.Fold(word)] = struct{}{}
	}
	return set
}

// TrimPunct removes leading and trailing runes that are neither letters nor
// digits.
func TrimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
