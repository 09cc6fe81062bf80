// Package config loads, normalizes, and validates reelstats configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, applies a .env file from the working
// directory, and honours environment fallbacks such as REELSTATS_SOURCE. The
// Config type centralizes the catalog source location, report layout and
// logging settings so every command discovers them in one pass.
package config
