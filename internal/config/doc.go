// Package config loads, normalizes, and validates curate configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as CURATE_TAGS_FILE. The
// Config type is the single place the tagging task finds its vocabulary
// sources and target metadata field, so task code never reads globals.
package config
