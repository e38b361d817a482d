// Package logging assembles the structured slog loggers used by curate.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// context helpers that tag every line of a curation run with its run id,
// task name, and the handle being processed. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
