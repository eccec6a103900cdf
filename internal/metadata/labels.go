package metadata

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"hara/internal/textutil"
)

// Separator divides a label from its value. Only the first occurrence on a line
// is significant, so values may contain further separators.
const Separator = ":"

// Default field labels.
const (
	LabelTitle    = "제목"
	LabelCategory = "구분"
	LabelAbstract = "초록"
)

// Field identifies one of the recognized metadata fields.
type Field int

const (
	FieldTitle Field = iota
	FieldCategory
	FieldAbstract
)

// AllFields lists the recognized fields in their canonical order.
var AllFields = []Field{FieldTitle, FieldCategory, FieldAbstract}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldCategory:
		return "category"
	case FieldAbstract:
		return "abstract"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Labels maps textual labels to fields. The zero value recognizes the default
// labels only.
type Labels struct {
	byLabel map[string]Field
}

// DefaultLabels returns the default label set.
func DefaultLabels() Labels {
	labels, _ := NewLabels([]string{LabelTitle}, []string{LabelCategory}, []string{LabelAbstract})
	return labels
}

// NewLabels builds a label set from per-field label lists. Labels are compared
// after trimming and NFC normalization. A label claimed by two different fields
// or containing the separator is rejected.
func NewLabels(title, category, abstract []string) (Labels, error) {
	byLabel := make(map[string]Field)
	groups := []struct {
		field  Field
		labels []string
	}{
		{FieldTitle, title},
		{FieldCategory, category},
		{FieldAbstract, abstract},
	}
	for _, group := range groups {
		for _, raw := range group.labels {
			label := canonicalLabel(raw)
			if label == "" {
				continue
			}
			if strings.Contains(label, Separator) {
				return Labels{}, fmt.Errorf("label %q for %s contains %q", raw, group.field, Separator)
			}
			if owner, ok := byLabel[label]; ok && owner != group.field {
				return Labels{}, fmt.Errorf("label %q claimed by both %s and %s", raw, owner, group.field)
			}
			byLabel[label] = group.field
		}
	}
	return Labels{byLabel: byLabel}, nil
}

// Lookup reports which field a label names.
func (l Labels) Lookup(label string) (Field, bool) {
	if l.byLabel == nil {
		return DefaultLabels().Lookup(label)
	}
	field, ok := l.byLabel[canonicalLabel(label)]
	return field, ok
}

// For returns the labels that map to field, sorted for stable output.
func (l Labels) For(field Field) []string {
	if l.byLabel == nil {
		return DefaultLabels().For(field)
	}
	var out []string
	for label, f := range l.byLabel {
		if f == field {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

func canonicalLabel(label string) string {
	return norm.NFC.String(textutil.TrimSpace(label))
}
