// Package config loads, normalizes, and validates hara configuration data.
//
// It supplies repository defaults, expands user paths (tilde shortcuts only, so
// relative roots keep the shape they have in the emitted records), reads TOML
// files, and honours HARA_* environment overrides. The Config type centralizes
// every knob the catalog builder, the search index and the preview server need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
