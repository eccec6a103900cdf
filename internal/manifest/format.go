package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hara/internal/catalog"
)

// Format selects the manifest serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a configuration value to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported manifest format %q", value)
	}
}

// FormatForPath infers the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// PathForFormat returns path with its extension replaced by the one for f,
// unless the extension already implies f.
func PathForFormat(path string, f Format) string {
	if FormatForPath(path) == f {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Extension()
}

// Encode serializes c. JSON output uses two-space indentation, leaves
// non-ASCII and HTML characters literal, and has no trailing newline. An empty
// catalog encodes as an empty array.
func Encode(c catalog.Catalog, format Format) ([]byte, error) {
	if c == nil {
		c = catalog.Catalog{}
	}
	var buf bytes.Buffer
	switch format {
	case FormatJSON, "":
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(c); err != nil {
			return nil, fmt.Errorf("encode json manifest: %w", err)
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(c); err != nil {
			return nil, fmt.Errorf("encode yaml manifest: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml manifest: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
}

// Decode parses manifest bytes in the given format.
func Decode(data []byte, format Format) (catalog.Catalog, error) {
	c := catalog.Catalog{}
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode json manifest: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if c == nil {
		c = catalog.Catalog{}
	}
	return c, nil
}
