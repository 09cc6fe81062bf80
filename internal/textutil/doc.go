// Package textutil provides the text handling behind title word counts and
// report labels.
//
// Words are split on whitespace, stripped of surrounding punctuation, and
// case-folded with golang.org/x/text so that "Love", "LOVE" and "love" count
// as one token. A Folder wraps a cases.Caser, which keeps internal state, so
// each goroutine must use its own Folder.
package textutil
