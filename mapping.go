package ghdocs

import "sync"

// Mapping records where a repository keeps its documentation.
type Mapping struct {
	URL      string `json:"url" yaml:"url"`
	DocsPath string `json:"docsPath" yaml:"docsPath"`
}

// MappingEntry is a Mapping together with its table key.
type MappingEntry struct {
	Name string `json:"name"`
	Mapping
}

// MappingTable is an insertion-ordered set of repository mappings keyed by
// normalized identifier. Entries are never removed; setting an existing key
// overwrites it in place. It is safe for concurrent use, with concurrent
// writes to the same key resolved last-writer-wins.
type MappingTable struct {
	mu      sync.RWMutex
	keys    []string
	entries map[string]Mapping
}

// NewMappingTable returns a table seeded with a copy of the given entries.
func NewMappingTable(seed []MappingEntry) *MappingTable {
	t := &MappingTable{entries: make(map[string]Mapping, len(seed))}
	for _, e := range seed {
		t.Set(e.Name, e.Mapping)
	}
	return t
}

// Get returns the mapping stored under key.
func (t *MappingTable) Get(key string) (Mapping, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.entries[key]
	return m, ok
}

// Set stores m under key.
func (t *MappingTable) Set(key string, m Mapping) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = m
}

// Entries returns a snapshot of the table in insertion order.
// Modifying the returned slice does not affect the table.
func (t *MappingTable) Entries() []MappingEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]MappingEntry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, MappingEntry{Name: k, Mapping: t.entries[k]})
	}
	return out
}

// Len returns the number of mappings in the table.
func (t *MappingTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.keys)
}
