package uri

import "iter"

type queryEntry struct {
	key   string
	first string
	rest  []string
}

// QueryMap is an ordered multimap over decomposed query pairs. Entries
// keep arrival order; keys are matched exactly (query keys, unlike header
// names, are case-sensitive).
type QueryMap struct {
	entries []queryEntry
}

func (m *QueryMap) Len() int {
	return len(m.entries)
}

func (m *QueryMap) Empty() bool {
	return len(m.entries) == 0
}

func (m *QueryMap) Has(key string) bool {
	return m.find(key) != -1
}

// Get returns the first value under the key.
func (m *QueryMap) Get(key string) (string, bool) {
	idx := m.find(key)
	if idx == -1 {
		return "", false
	}

	return m.entries[idx].first, true
}

// GetAll iterates over all values under the key in arrival order.
func (m *QueryMap) GetAll(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		idx := m.find(key)
		if idx == -1 {
			return
		}

		if !yield(m.entries[idx].first) {
			return
		}

		for _, value := range m.entries[idx].rest {
			if !yield(value) {
				return
			}
		}
	}
}

func (m *QueryMap) add(key, value string) {
	idx := m.find(key)
	if idx == -1 {
		m.entries = append(m.entries, queryEntry{key: key, first: value})
		return
	}

	m.entries[idx].rest = append(m.entries[idx].rest, value)
}

func (m *QueryMap) find(key string) int {
	for i := range m.entries {
		if m.entries[i].key == key {
			return i
		}
	}

	return -1
}
