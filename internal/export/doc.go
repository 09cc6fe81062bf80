// Package export writes and reads the downloadable projection of a filtered
// catalog: title, type, release_year and rating, in that column order.
package export
