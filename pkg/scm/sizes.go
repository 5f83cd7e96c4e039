package scm

// SizeEntry is one row of the size/complexity table, keyed by path. Code is
// the metric the hot-spot analyzer treats as complexity; the descriptive
// columns pass through analysis untouched.
type SizeEntry struct {
	Path     string
	Language string
	Blank    int
	Comment  int
	Code     float64
	Extra    map[string]string
}

// Field resolves a column name on the size entry, mirroring Entry.Field.
func (s *SizeEntry) Field(name string) (string, bool) {
	if name == ColPath {
		return s.Path, true
	}
	v, ok := s.Extra[name]
	return v, ok
}

// SizeTable is a normalized size/complexity table.
type SizeTable struct {
	entries []SizeEntry
}

// NewSizeTable builds a size table from entries, copying the slice.
func NewSizeTable(entries []SizeEntry) *SizeTable {
	t := &SizeTable{entries: make([]SizeEntry, len(entries))}
	copy(t.entries, entries)
	return t
}

// Len returns the number of rows.
func (t *SizeTable) Len() int { return len(t.entries) }

// Entries returns the underlying rows. The slice must not be mutated.
func (t *SizeTable) Entries() []SizeEntry { return t.entries }
