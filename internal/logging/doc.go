// Package logging assembles structured slog loggers used across reelstats.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides component-scoped loggers plus a no-op logger for
// tests and wiring code that cannot fail. Logs default to stderr so command
// output on stdout can be piped.
package logging
