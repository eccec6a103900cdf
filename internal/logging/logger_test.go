package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hara/internal/config"
	"hara/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, "run-7", &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message")
	logger.Info("info message")
	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Fatalf("debug output should be filtered at info level, got %s", out)
	}
	if !strings.Contains(out, "info message") || !strings.Contains(out, "run-7") {
		t.Fatalf("expected info line with run id, got %s", out)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf, RunID: "run-1"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "catalog").Info("scanned subject",
		logging.String(logging.FieldSubject, "물리"),
		logging.String(logging.FieldFile, "meta data/물리/a b.txt"),
		logging.Int("records", 3),
	)

	line := buf.String()
	for _, want := range []string{
		"INFO catalog: scanned subject",
		"subject=물리",
		`file="meta data/물리/a b.txt"`,
		"records=3",
		"run_id=run-1",
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestJSONLoggerUsesCanonicalKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("duplicate id", logging.String("id", "x"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%s)", err, buf.String())
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected lower-case level, got %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
	if payload["msg"] != "duplicate id" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "duplicate id", "duplicate_id")
	out := buf.String()
	if !strings.Contains(out, `"event_type":"duplicate_id"`) || !strings.Contains(out, `"impact":`) {
		t.Fatalf("expected enforced fields, got %s", out)
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}

func TestWithContextAddsStage(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithStage(context.Background(), "scan")
	logging.WithContext(ctx, logger).Info("hello")
	if !strings.Contains(buf.String(), `"stage":"scan"`) {
		t.Fatalf("expected stage from context, got %s", buf.String())
	}
	if strings.Contains(buf.String(), `"run_id"`) {
		t.Fatalf("did not expect run_id without one on the context, got %s", buf.String())
	}
}
