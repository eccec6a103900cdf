package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"hara/internal/textutil"
)

// ErrInvalidEncoding reports metadata content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("metadata is not valid UTF-8")

// Fields holds the recognized values of one metadata file. Missing fields are
// empty strings.
type Fields struct {
	Title    string
	Category string
	Abstract string
}

// Get returns the value of field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldCategory:
		return f.Category
	case FieldAbstract:
		return f.Abstract
	default:
		return ""
	}
}

func (f *Fields) set(field Field, value string) {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldCategory:
		f.Category = value
	case FieldAbstract:
		f.Abstract = value
	}
}

// ParseFile reads and parses the metadata file at path.
func ParseFile(path string, labels Labels) (Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fields{}, fmt.Errorf("open metadata: %w", err)
	}
	defer file.Close()

	fields, err := Parse(file, labels)
	if err != nil {
		return Fields{}, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

// Parse extracts the recognized fields from r. A leading byte order mark is
// honoured (UTF-16 input with a BOM is decoded to UTF-8).
func Parse(r io.Reader, labels Labels) (Fields, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return Fields{}, fmt.Errorf("read metadata: %w", err)
	}
	if !utf8.Valid(data) {
		return Fields{}, ErrInvalidEncoding
	}
	return ParseString(string(data), labels), nil
}

// ParseString parses already decoded metadata text.
func ParseString(text string, labels Labels) Fields {
	var fields Fields
	for _, line := range SplitLines(text) {
		key, value, ok := strings.Cut(line, Separator)
		if !ok {
			continue
		}
		field, known := labels.Lookup(key)
		if !known {
			continue
		}
		fields.set(field, textutil.TrimSpace(value))
	}
	return fields
}

// SplitLines splits text at every line boundary: \n, \r\n, \r, vertical tab,
// form feed, the information separators U+001C to U+001E, NEL, and the Unicode
// line and paragraph separators. Terminators are dropped and a trailing
// terminator does not produce an empty final line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
