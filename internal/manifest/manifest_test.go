package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"hara/internal/catalog"
	"hara/internal/manifest"
)

func sampleCatalog() catalog.Catalog {
	return catalog.Catalog{
		{ID: "01_양자", Title: "양자 얽힘", Subject: "물리", Abstract: "얽힘 상태 & <측정>", Meta: "meta data/물리/01_양자.txt", PDF: "paper/물리/01_양자.pdf"},
		{ID: "my_paper", Title: "X", Subject: "math", Abstract: "", Meta: "meta data/math/my paper.txt", PDF: "paper/math/my paper.pdf"},
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := manifest.Encode(sampleCatalog()[1:], manifest.FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `[
  {
    "id": "my_paper",
    "title": "X",
    "subject": "math",
    "abstract": "",
    "meta": "meta data/math/my paper.txt",
    "pdf": "paper/math/my paper.pdf"
  }
]`
	if string(data) != want {
		t.Fatalf("unexpected json:\n%s", data)
	}
}

func TestEncodeJSONKeepsTextLiteral(t *testing.T) {
	data, err := manifest.Encode(sampleCatalog(), manifest.FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"양자 얽힘"`, `"얽힘 상태 & <측정>"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s literal in output:\n%s", want, text)
		}
	}
	if strings.HasSuffix(text, "\n") {
		t.Fatal("expected no trailing newline")
	}
}

func TestEncodeEmptyCatalog(t *testing.T) {
	for _, c := range []catalog.Catalog{nil, {}} {
		data, err := manifest.Encode(c, manifest.FormatJSON)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if string(data) != "[]" {
			t.Fatalf("expected [], got %q", data)
		}
	}
}

func TestEncodeDecodeYAML(t *testing.T) {
	data, err := manifest.Encode(sampleCatalog(), manifest.FormatYAML)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(string(data), "- id: ") {
		t.Fatalf("unexpected yaml:\n%s", data)
	}
	got, err := manifest.Decode(data, manifest.FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := sampleCatalog()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("yaml mismatch: %+v", got)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := manifest.Encode(nil, manifest.Format("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    manifest.Format
		wantErr bool
	}{
		{"", manifest.FormatJSON, false},
		{"JSON", manifest.FormatJSON, false},
		{"yaml", manifest.FormatYAML, false},
		{"yml", manifest.FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := manifest.ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
	if manifest.FormatForPath("out/catalog.YML") != manifest.FormatYAML {
		t.Fatal("expected yaml for .YML")
	}
	if manifest.FormatForPath("manifest.json") != manifest.FormatJSON {
		t.Fatal("expected json for .json")
	}
}

func TestPathForFormat(t *testing.T) {
	tests := []struct {
		path   string
		format manifest.Format
		want   string
	}{
		{"manifest.json", manifest.FormatYAML, "manifest.yaml"},
		{"out/manifest.yml", manifest.FormatYAML, "out/manifest.yml"},
		{"manifest.yaml", manifest.FormatJSON, "manifest.json"},
		{"manifest", manifest.FormatYAML, "manifest.yaml"},
		{"manifest.json", manifest.FormatJSON, "manifest.json"},
	}
	for _, tt := range tests {
		if got := manifest.PathForFormat(tt.path, tt.format); got != tt.want {
			t.Errorf("PathForFormat(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	data, err := manifest.Encode(sampleCatalog(), manifest.FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := manifest.Validate(data); err != nil {
		t.Fatalf("expected valid manifest: %v", err)
	}
	if err := manifest.ValidateCatalog(nil); err != nil {
		t.Fatalf("expected empty catalog to validate: %v", err)
	}

	invalid := map[string]string{
		"not an array":  `{"id": "x"}`,
		"missing field": `[{"id": "x", "title": "t", "subject": "s", "abstract": "", "meta": "m"}]`,
		"extra field":   `[{"id": "x", "title": "t", "subject": "s", "abstract": "", "meta": "m", "pdf": "p", "year": "2024"}]`,
		"wrong type":    `[{"id": 1, "title": "t", "subject": "s", "abstract": "", "meta": "m", "pdf": "p"}]`,
		"malformed":     `[{`,
	}
	for name, doc := range invalid {
		if err := manifest.Validate([]byte(doc)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	data, err := manifest.Encode(sampleCatalog(), manifest.FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	result, err := manifest.Write(path, data)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if result.Unchanged || result.Bytes != len(data) {
		t.Fatalf("unexpected result: %+v", result)
	}

	got, err := manifest.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 || got[0] != sampleCatalog()[0] {
		t.Fatalf("unexpected catalog: %+v", got)
	}

	again, err := manifest.Write(path, data)
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if !again.Unchanged {
		t.Fatal("expected identical content to be reported unchanged")
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte("stale content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := manifest.Write(path, []byte("[]")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[]" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestWriteLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}
	holder := flock.New(manifest.LockPath(path))
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock: ok=%v err=%v", ok, err)
	}
	defer holder.Unlock()

	_, err = manifest.Write(path, []byte("[]"))
	if !errors.Is(err, manifest.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous" {
		t.Fatalf("locked write must not touch the file, got %q", got)
	}
}

func TestWriteMissingDirectoryKeepsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "manifest.json")
	if _, err := manifest.Write(path, []byte("[]")); err == nil {
		t.Fatal("expected error for missing output directory")
	}
}

func TestReadMissing(t *testing.T) {
	_, err := manifest.Read(filepath.Join(t.TempDir(), "manifest.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLockPath(t *testing.T) {
	if got := manifest.LockPath("site/manifest.json"); got != filepath.Join("site", ".manifest.json.lock") {
		t.Fatalf("LockPath = %q", got)
	}
}

func TestSchemaIsEmbedded(t *testing.T) {
	if !strings.Contains(manifest.Schema(), `"additionalProperties": false`) {
		t.Fatal("expected embedded schema text")
	}
}
