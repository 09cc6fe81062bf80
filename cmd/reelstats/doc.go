// Package main hosts the reelstats CLI entrypoint and command graph.
//
// Commands load one catalog per invocation through a shared command context,
// translate flags into filter criteria, and hand the filtered records to the
// aggregate, report and export packages. Logs go to stderr so stdout can be
// piped.
package main
