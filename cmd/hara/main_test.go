package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hara/internal/catalog"
	"hara/internal/manifest"
	"hara/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func setupArchive(t *testing.T) string {
	t.Helper()
	_, base := testsupport.NewConfig(t)
	testsupport.SampleTree(t, base)
	return base
}

func TestRootWithoutArgsBuildsManifest(t *testing.T) {
	base := setupArchive(t)

	out, _, err := runCLI(t)
	if err != nil {
		t.Fatalf("hara: %v", err)
	}
	requireContains(t, out, "Manifest:")
	requireContains(t, out, "4 records")

	papers, err := manifest.Read(filepath.Join(base, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(papers) != 4 {
		t.Fatalf("expected 4 papers, got %d", len(papers))
	}
}

func TestBuildReportsUnchangedOnRerun(t *testing.T) {
	setupArchive(t)

	if _, _, err := runCLI(t, "build"); err != nil {
		t.Fatalf("first build: %v", err)
	}
	out, _, err := runCLI(t, "build")
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	requireContains(t, out, "unchanged")
}

func TestBuildDryRunPrintsManifest(t *testing.T) {
	base := setupArchive(t)

	out, _, err := runCLI(t, "build", "--dry-run")
	if err != nil {
		t.Fatalf("build --dry-run: %v", err)
	}
	var papers catalog.Catalog
	if err := json.Unmarshal([]byte(out), &papers); err != nil {
		t.Fatalf("dry-run output is not a manifest: %v\n%s", err, out)
	}
	if len(papers) != 4 {
		t.Fatalf("expected 4 papers, got %d", len(papers))
	}
	if _, err := os.Stat(filepath.Join(base, "manifest.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run must not write the manifest (err=%v)", err)
	}
}

func TestBuildYAMLOutput(t *testing.T) {
	base := setupArchive(t)

	if _, _, err := runCLI(t, "build", "--format", "yaml", "-o", "catalog.yaml"); err != nil {
		t.Fatalf("build yaml: %v", err)
	}
	papers, err := manifest.Read(filepath.Join(base, "catalog.yaml"))
	if err != nil {
		t.Fatalf("read yaml manifest: %v", err)
	}
	if len(papers) != 4 {
		t.Fatalf("expected 4 papers, got %d", len(papers))
	}
}

func TestBuildFormatOverrideFollowsExtension(t *testing.T) {
	base := setupArchive(t)

	if _, _, err := runCLI(t, "build", "--format", "yaml"); err != nil {
		t.Fatalf("build yaml: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "manifest.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("yaml must not be written to manifest.json (err=%v)", err)
	}
	papers, err := manifest.Read(filepath.Join(base, "manifest.yaml"))
	if err != nil {
		t.Fatalf("read yaml manifest: %v", err)
	}
	if len(papers) != 4 {
		t.Fatalf("expected 4 papers, got %d", len(papers))
	}
}

func TestBuildMissingMetaRootFails(t *testing.T) {
	testsupport.NewConfig(t)

	_, _, err := runCLI(t)
	if !errors.Is(err, catalog.ErrMetaRootMissing) {
		t.Fatalf("expected ErrMetaRootMissing, got %v", err)
	}
}

func TestBuildLogsGoToStderr(t *testing.T) {
	setupArchive(t)

	out, errOut, err := runCLI(t, "--log-level", "debug", "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, errOut, "manifest build complete")
	requireContains(t, errOut, "run_id=")
	if strings.Contains(out, "manifest build complete") {
		t.Fatal("log lines leaked to stdout")
	}
}

func TestBuildRejectsBadLogLevel(t *testing.T) {
	setupArchive(t)
	if _, _, err := runCLI(t, "--log-level", "loud"); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
}

func TestListCommand(t *testing.T) {
	setupArchive(t)

	if _, _, err := runCLI(t, "list"); err == nil {
		t.Fatal("expected list to fail before the first build")
	}
	if _, _, err := runCLI(t, "build"); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "my_paper")
	requireContains(t, out, "4 papers in 3 subjects")

	out, _, err = runCLI(t, "list", "--json", "--subject", "물리")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	var papers catalog.Catalog
	if err := json.Unmarshal([]byte(out), &papers); err != nil {
		t.Fatalf("decode list output: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("expected 2 physics papers, got %+v", papers)
	}
	requireContains(t, out, "얽힘 상태 & <측정>")
}

func TestSearchCommand(t *testing.T) {
	for _, withIndex := range []bool{false, true} {
		name := "manifest"
		if withIndex {
			name = "index"
		}
		t.Run(name, func(t *testing.T) {
			setupArchive(t)
			args := []string{"build"}
			if withIndex {
				args = append(args, "--index", "manifest.db")
			}
			out, _, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if withIndex {
				requireContains(t, out, "Search index:")
				t.Setenv("HARA_INDEX", "manifest.db")
			}

			out, _, err = runCLI(t, "search", "--json", "PROOF")
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			var papers catalog.Catalog
			if err := json.Unmarshal([]byte(out), &papers); err != nil {
				t.Fatalf("decode search output: %v", err)
			}
			if len(papers) != 1 || papers[0].ID != "proof" {
				t.Fatalf("unexpected results: %+v", papers)
			}

			out, _, err = runCLI(t, "search", "zzz")
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			requireContains(t, out, "No matching papers")

			out, _, err = runCLI(t, "search", "-s", "물리", "얽힘")
			if err != nil {
				t.Fatalf("search with subject: %v", err)
			}
			requireContains(t, out, "01_양자")
		})
	}
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := runCLI(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if doc["type"] != "array" {
		t.Fatalf("unexpected schema: %v", doc)
	}
}
