// Package server exposes a built manifest over HTTP for local preview.
//
// It serves the manifest file itself, a small JSON API with the browser
// front-end's search semantics, and the metadata and paper files the records
// point at. Records are re-read on every request so a concurrent build is
// picked up without a restart.
package server
