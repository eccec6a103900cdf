// Package main hosts the hara CLI entrypoint and command graph.
//
// Running hara with no arguments builds manifest.json from the metadata tree
// in the working directory. The remaining commands inspect the result (list,
// search), preview it over HTTP (serve), and scaffold or check configuration.
// Configuration resolution and logger setup live here so subcommands stay
// thin wrappers over the internal packages.
package main
