// Package catalog walks the metadata tree and assembles the ordered list of
// paper records that make up the manifest.
//
// The tree has two levels: every directory under the metadata root is a
// subject, and every file in a subject ending in the metadata extension
// describes one paper. Subjects are visited in name order and files within a
// subject in sorted order, so the catalog is deterministic for a given tree.
// Record derivation (Assemble) is pure; only Builder touches the filesystem.
//
// PDF paths are derived, never checked, and identifiers are not deduplicated:
// Duplicates reports collisions without altering the catalog.
package catalog
