// Package index keeps a SQLite copy of the catalog for searching from the
// command line and the preview server.
//
// The index is derived data: every Rebuild replaces its contents in a single
// transaction, and a database written by an incompatible schema version is
// recreated rather than migrated.
package index
