// Package repository persists the content hierarchy curated by curate in SQLite.
//
// Communities own collections, collections own items, items own named bundles,
// and bundles own bitstreams. Items carry their descriptive metadata in
// memory; tasks mutate it through Item.AddMetadata and Item.ClearMetadata and
// then persist the whole record with Store.Update. Read-only items refuse
// updates with services.ErrUnauthorized so callers can exercise the same
// failure path a permission check produces.
//
// Handles are the public identifiers. Store.Resolve maps a handle to a
// Container whose Kind tells the traversal which branch to take.
//
// Schema changes land as new files under migrations/; they are applied in
// lexical order on Open and recorded in schema_migrations.
package repository
