// Package pipeline runs one manifest build end to end: scan the metadata
// tree, encode and validate the manifest, replace the output file, and
// optionally refresh the search index.
//
// Each step runs as a named stage with start, completion and failure events
// logged under the run identifier, so a failed build points at the stage and
// file that stopped it.
package pipeline
