package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if filepath.Clean(c.Paths.Output) == filepath.Clean(c.Paths.MetaRoot) {
		return errors.New("paths.output must not point at paths.meta_root")
	}
	if c.IndexEnabled() && filepath.Clean(c.Paths.Index) == filepath.Clean(c.Paths.Output) {
		return errors.New("paths.index must differ from paths.output")
	}
	return nil
}

func (c *Config) validateMetadata() error {
	if c.Metadata.Extension == c.Metadata.DocumentExtension {
		return fmt.Errorf("metadata.extension and metadata.document_extension must differ (both %q)", c.Metadata.Extension)
	}
	seen := make(map[string]string)
	groups := []struct {
		key    string
		labels []string
	}{
		{"metadata.title_labels", c.Metadata.TitleLabels},
		{"metadata.category_labels", c.Metadata.CategoryLabels},
		{"metadata.abstract_labels", c.Metadata.AbstractLabels},
	}
	for _, group := range groups {
		for _, label := range group.labels {
			if strings.Contains(label, ":") {
				return fmt.Errorf("%s: label %q must not contain ':'", group.key, label)
			}
			if owner, ok := seen[label]; ok && owner != group.key {
				return fmt.Errorf("%s: label %q is already used by %s", group.key, label, owner)
			}
			seen[label] = group.key
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (use json or yaml)", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
