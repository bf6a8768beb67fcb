package catalog

import "strings"

// Index is the read-only lookup view of one loaded catalog. It normalizes
// display names once at build time so instruction matching never re-implements
// trimming and case folding at call sites.
type Index struct {
	entries []Entry
	byName  map[string]*Entry
	byID    map[string]*Entry
}

func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries: entries,
		byName:  make(map[string]*Entry, len(entries)),
		byID:    make(map[string]*Entry, len(entries)),
	}
	for i := range idx.entries {
		e := &idx.entries[i]
		idx.byName[NormalizeName(e.Name)] = e
		idx.byID[e.ID] = e
	}
	return idx
}

// NormalizeName is the single matching rule for free-text item names:
// trim whitespace, fold case.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveName matches a free-text item name against display names.
// Returns nil when the name is not on the menu.
func (i *Index) ResolveName(name string) *Entry {
	return i.byName[NormalizeName(name)]
}

func (i *Index) ByID(id string) *Entry {
	return i.byID[id]
}

func (i *Index) Entries() []Entry {
	return i.entries
}

func (i *Index) Len() int {
	return len(i.entries)
}
