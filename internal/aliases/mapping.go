// Package aliases holds the alias mapping and its JSON file store.
//
// A Mapping associates alias names with path strings. Names are unique and
// case-sensitive as keys, but ordering and fuzzy search compare them
// case-insensitively.
package aliases

import (
	"sort"
	"strings"
)

// Mapping maps alias names to (possibly unexpanded) paths.
type Mapping map[string]string

// Entry is a single alias/path pair.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Lookup returns the path stored under name using an exact, case-sensitive
// key match. An empty stored path counts as no match.
func (m Mapping) Lookup(name string) (string, bool) {
	path, ok := m[name]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Set stores path under name, replacing any previous value.
func (m Mapping) Set(name, path string) {
	m[name] = path
}

// Delete removes name and reports whether it was present.
func (m Mapping) Delete(name string) bool {
	if _, ok := m[name]; !ok {
		return false
	}
	delete(m, name)
	return true
}

// Sorted returns all entries ordered by case-insensitive name.
func (m Mapping) Sorted() []Entry {
	entries := make([]Entry, 0, len(m))
	for name, path := range m {
		entries = append(entries, Entry{Name: name, Path: path})
	}
	sortEntries(entries)
	return entries
}

// Search returns the entries whose name contains query, ignoring case,
// ordered like Sorted.
func (m Mapping) Search(query string) []Entry {
	q := strings.ToLower(query)
	entries := []Entry{}
	for name, path := range m {
		if strings.Contains(strings.ToLower(name), q) {
			entries = append(entries, Entry{Name: name, Path: path})
		}
	}
	sortEntries(entries)
	return entries
}

// Clone returns a shallow copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sortEntries orders by lowercase name; names that differ only in case
// fall back to byte order so output is deterministic.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a != b {
			return a < b
		}
		return entries[i].Name < entries[j].Name
	})
}
