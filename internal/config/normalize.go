package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnvOverrides()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMetadata()
	c.normalizeOutput()
	c.normalizeServe()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnvOverrides() {
	if value, ok := os.LookupEnv("HARA_META_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.MetaRoot = value
	}
	if value, ok := os.LookupEnv("HARA_PAPER_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.PaperRoot = value
	}
	if value, ok := os.LookupEnv("HARA_OUTPUT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Output = value
	}
	if value, ok := os.LookupEnv("HARA_INDEX"); ok {
		c.Paths.Index = value
	}
	if value, ok := os.LookupEnv("HARA_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.MetaRoot) == "" {
		c.Paths.MetaRoot = defaultMetaRoot
	}
	if c.Paths.MetaRoot, err = expandHome(c.Paths.MetaRoot); err != nil {
		return fmt.Errorf("paths.meta_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.PaperRoot) == "" {
		c.Paths.PaperRoot = defaultPaperRoot
	}
	if c.Paths.PaperRoot, err = expandHome(c.Paths.PaperRoot); err != nil {
		return fmt.Errorf("paths.paper_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = defaultOutput
	}
	if c.Paths.Output, err = expandHome(strings.TrimSpace(c.Paths.Output)); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	c.Paths.Index = strings.TrimSpace(c.Paths.Index)
	if c.Paths.Index, err = expandHome(c.Paths.Index); err != nil {
		return fmt.Errorf("paths.index: %w", err)
	}
	return nil
}

func (c *Config) normalizeMetadata() {
	c.Metadata.Extension = normalizeExtension(c.Metadata.Extension, defaultExtension)
	c.Metadata.DocumentExtension = normalizeExtension(c.Metadata.DocumentExtension, defaultDocumentExtension)
	c.Metadata.TitleLabels = normalizeLabels(c.Metadata.TitleLabels, defaultTitleLabel)
	c.Metadata.CategoryLabels = normalizeLabels(c.Metadata.CategoryLabels, defaultCategoryLabel)
	c.Metadata.AbstractLabels = normalizeLabels(c.Metadata.AbstractLabels, defaultAbstractLabel)
}

func normalizeExtension(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, ".") {
		value = "." + value
	}
	return value
}

func normalizeLabels(labels []string, fallback string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		out = []string{fallback}
	}
	return out
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "":
		c.Output.Format = defaultOutputFormat
	case "yml":
		c.Output.Format = "yaml"
	}
}

func (c *Config) normalizeServe() {
	c.Serve.Bind = strings.TrimSpace(c.Serve.Bind)
	if c.Serve.Bind == "" {
		c.Serve.Bind = defaultServeBind
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
