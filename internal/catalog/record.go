package catalog

// Record is one paper entry in the manifest. Field order is the serialized order.
type Record struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Subject  string `json:"subject" yaml:"subject"`
	Abstract string `json:"abstract" yaml:"abstract"`
	Meta     string `json:"meta" yaml:"meta"`
	PDF      string `json:"pdf" yaml:"pdf"`
}

// Catalog is the ordered sequence of records produced by one build.
type Catalog []Record

// Find returns the first record with the given id.
func (c Catalog) Find(id string) (Record, bool) {
	for _, rec := range c {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Subjects returns the distinct subject labels in order of first appearance.
func (c Catalog) Subjects() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range c {
		if _, ok := seen[rec.Subject]; ok {
			continue
		}
		seen[rec.Subject] = struct{}{}
		out = append(out, rec.Subject)
	}
	return out
}

// Filter returns the records for which keep returns true, preserving order.
func (c Catalog) Filter(keep func(Record) bool) Catalog {
	out := make(Catalog, 0, len(c))
	for _, rec := range c {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
