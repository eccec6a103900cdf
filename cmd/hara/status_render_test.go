package main

import (
	"io"
	"strings"
	"testing"

	"hara/internal/catalog"
	"hara/internal/config"
	"hara/internal/manifest"
	"hara/internal/pipeline"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Manifest", statusOK, "ready", false)
	if line != "  Manifest:          [OK] ready" {
		t.Fatalf("unexpected line %q", line)
	}
	colored := renderStatusLine("Manifest", statusWarn, "", true)
	if !strings.HasPrefix(colored, ansiYellow) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected ANSI colors, got %q", colored)
	}
	if !strings.Contains(colored, "[WARN]") {
		t.Fatalf("expected WARN label, got %q", colored)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected no color for non-file writer")
	}
}

func TestBuildSummary(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Index = "manifest.db"
	result := pipeline.Result{
		Report: catalog.Report{
			Catalog:    make(catalog.Catalog, 1234),
			Subjects:   6,
			Skipped:    2,
			Duplicates: []catalog.Duplicate{{ID: "x", Meta: []string{"a", "b"}}},
		},
		Format:  manifest.FormatJSON,
		Data:    make([]byte, 2048),
		Indexed: true,
	}

	lines := buildSummary(&cfg, result, false)
	if len(lines) != 4 {
		t.Fatalf("expected 4 summary lines, got %v", lines)
	}
	if !strings.Contains(lines[0], "json -> manifest.json (1,234 records, 2.0 kB)") {
		t.Fatalf("unexpected manifest line %q", lines[0])
	}
	if !strings.Contains(lines[1], "6 scanned, 2 entries skipped") {
		t.Fatalf("unexpected subjects line %q", lines[1])
	}
	if !strings.Contains(lines[2], "[WARN]") || !strings.Contains(lines[3], "manifest.db") {
		t.Fatalf("unexpected trailing lines %v", lines[2:])
	}
}

func TestRenderPaperTable(t *testing.T) {
	out := renderPaperTable(catalog.Catalog{{ID: "proof", Subject: "수학", Title: "Proof of Concept"}})
	for _, want := range []string{"ID", "Subject", "proof", "수학", "Proof of Concept"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}
