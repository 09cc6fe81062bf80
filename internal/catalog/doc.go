// Package catalog loads a media-title catalog from a tabular source and holds
// it as an immutable set of records with derived fields.
//
// Load reads every row through a Source (CSV file or SQLite table), runs
// Derive on each raw row to compute year/month added, the genre list, the
// primary country and movie runtimes, and precomputes the distinct option
// values used by filter pickers. Derivation problems never abort a load; they
// are collected as Warnings. Optional columns missing from the source are
// reported as MissingColumnNotices and exposed through Store.Has so callers
// can disable the dependent filters and aggregates.
//
// A Store is never mutated after Load returns. Reloading means building a new
// Store and swapping the reference.
package catalog
