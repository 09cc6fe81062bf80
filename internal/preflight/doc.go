// Package preflight provides readiness checks for the paths and settings
// reelstats depends on.
//
// The CLI "config validate" command runs them and prints one status line per
// check. Checks never fail hard; each returns a Result with a short detail.
package preflight
