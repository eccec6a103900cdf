package testsupport

import (
	"testing"

	"hara/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig changes the working directory to a fresh temp directory and returns
// a default config whose relative roots resolve inside it. The temp directory
// is returned alongside so tests can populate the tree.
func NewConfig(t testing.TB, opts ...ConfigOption) (*config.Config, string) {
	t.Helper()

	base := t.TempDir()
	t.Chdir(base)
	t.Setenv("HOME", base)

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg, base
}

// WithIndex enables the SQLite search index at the given relative path.
func WithIndex(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Index = path
	}
}

// WithOutputFormat selects the manifest format.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithLabels replaces the recognized labels for all three fields.
func WithLabels(title, category, abstract []string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metadata.TitleLabels = title
		b.cfg.Metadata.CategoryLabels = category
		b.cfg.Metadata.AbstractLabels = abstract
	}
}
