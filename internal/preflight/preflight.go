package preflight

import (
	"path/filepath"

	"golang.org/x/sys/unix"

	"hara/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// Failed reports whether the result should block a build.
func (r Result) Failed() bool {
	return !r.Passed && !r.Optional
}

// RunAll executes the filesystem checks a build depends on.
// The paper root is optional: a missing one only breaks PDF links.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Metadata root", cfg.Paths.MetaRoot, readAccess),
	}

	paper := CheckDirectoryAccess("Paper root", cfg.Paths.PaperRoot, readAccess)
	paper.Optional = true
	results = append(results, paper)

	results = append(results, CheckDirectoryAccess("Output directory", parentDir(cfg.Paths.Output), writeAccess))

	if cfg.IndexEnabled() {
		results = append(results, CheckDirectoryAccess("Index directory", parentDir(cfg.Paths.Index), writeAccess))
	}

	return results
}

// Blocking returns the failed checks that are not optional.
func Blocking(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

const (
	readAccess  = unix.R_OK | unix.X_OK
	writeAccess = unix.R_OK | unix.W_OK | unix.X_OK
)

func parentDir(path string) string {
	return filepath.Dir(path)
}
