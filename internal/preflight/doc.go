// Package preflight checks that the directories a build reads and writes are
// present and accessible before any work starts.
package preflight
