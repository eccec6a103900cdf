package catalog

import "strings"

// Query selects records the way the browser front-end filters them: Text is a
// case-insensitive substring of the title or abstract, Subject an exact match.
// Empty fields match everything.
type Query struct {
	Text    string
	Subject string
	Limit   int
}

// Fold returns the case-folded form used for substring matching.
func Fold(value string) string {
	return strings.ToLower(value)
}

// Matches reports whether rec satisfies q. Limit is ignored.
func (q Query) Matches(rec Record) bool {
	if q.Subject != "" && rec.Subject != q.Subject {
		return false
	}
	if q.Text == "" {
		return true
	}
	needle := Fold(q.Text)
	return strings.Contains(Fold(rec.Title), needle) || strings.Contains(Fold(rec.Abstract), needle)
}

// Search returns the records matching q in catalog order.
func (c Catalog) Search(q Query) Catalog {
	out := c.Filter(q.Matches)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
