package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IsSpace reports whether r is whitespace. Beyond unicode.IsSpace it accepts
// the information separators U+001C to U+001F, which plain-text metadata
// treats as blank.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// TrimSpace removes leading and trailing runes matched by IsSpace.
func TrimSpace(value string) string {
	return strings.TrimFunc(value, IsSpace)
}

// CollapseWhitespace trims value and replaces each internal run of whitespace
// with sep.
func CollapseWhitespace(value, sep string) string {
	return strings.Join(strings.FieldsFunc(value, IsSpace), sep)
}

// NFC returns value in Unicode normalization form C.
func NFC(value string) string {
	return norm.NFC.String(value)
}

// SlashPath rewrites every path separator, including backslashes on hosts
// where they are ordinary file name characters, to a forward slash.
func SlashPath(value string) string {
	return strings.ReplaceAll(value, "\\", "/")
}

// Ternary returns a if cond is true, otherwise b.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
