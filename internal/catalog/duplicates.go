package catalog

// Duplicate lists the metadata files whose records share an identifier.
type Duplicate struct {
	ID   string
	Meta []string
}

// Duplicates groups records that share an id, ordered by first appearance.
func Duplicates(c Catalog) []Duplicate {
	index := make(map[string]int)
	var groups []Duplicate
	for _, rec := range c {
		if i, ok := index[rec.ID]; ok {
			groups[i].Meta = append(groups[i].Meta, rec.Meta)
			continue
		}
		index[rec.ID] = len(groups)
		groups = append(groups, Duplicate{ID: rec.ID, Meta: []string{rec.Meta}})
	}
	out := groups[:0]
	for _, g := range groups {
		if len(g.Meta) > 1 {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
