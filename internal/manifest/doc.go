// Package manifest serializes a catalog to the manifest file consumed by the
// browser front-end and reads it back.
//
// Encode produces the byte form (indented JSON, or YAML), Validate checks JSON
// output against the embedded schema, and Write replaces the manifest
// atomically under an advisory lock so concurrent builds never interleave.
package manifest
