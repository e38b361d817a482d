// Package curation runs curation tasks over a repository container.
//
// A Runner resolves a handle, initializes the task once, and walks the
// container: an item is handed to the task directly, a collection hands over
// its items in order, and a community flattens its collections' items. Every
// task writes into a Run, which owns the append-only Report and the Status.
// SUCCESS and ERROR outcomes overwrite the status; SKIP lines never do, so
// the final status is the outcome of the last write attempt, or SKIP when
// nothing was attempted.
//
// Task initialization failures are fatal for the run. Enumeration failures
// are logged and stop only the branch that produced them.
package curation
