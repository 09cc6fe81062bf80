// Package aggregate computes summary views over a set of catalog records.
//
// Every function is pure and allocates its output. Ranked views follow one
// contract: count descending, ties broken by the order a key was first seen,
// and n <= 0 returns every entry. Empty input yields empty views and an absent
// average, never an error.
package aggregate
