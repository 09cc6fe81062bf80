// Package filter builds record predicates from user criteria.
//
// Values within one category are OR-combined and categories are AND-combined.
// A nil category slice leaves the category unconstrained, while a non-nil empty
// slice matches no record. Predicates are pure: they hold no references to the
// records they test and never modify them.
package filter
