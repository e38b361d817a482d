// Package services defines shared utilities consumed by the curation tasks
// and the repository store.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, task names, and handles for
//     logging.
//   - Structured error markers plus the Wrap helper so failures can be told
//     apart (authorization vs data access vs configuration) where they are
//     converted into report lines and statuses.
package services
