package headers

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type entry struct {
	key Name
	// first holds the only value most entries ever have, so no extra slice
	// is allocated for the common case. rest is appended to on repeats.
	first Value
	rest  []Value
}

// Headers is an ordered multimap of header entries. Keys match
// case-insensitively; lookup is a linear scan, which beats hashing on the
// small entry counts typical for request-scoped headers. Declaration order
// is preserved across distinct keys and within repeats of the same key, so
// serialization is deterministic and multi-value semantics (Set-Cookie and
// the like) survive intact.
//
// Every entry holds at least one value: Set and Add are the only ways to
// create one, and both store a value upfront.
type Headers struct {
	entries []entry
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with storage for n entries
// preallocated.
func NewPrealloc(n int) *Headers {
	return &Headers{
		entries: make([]entry, 0, n),
	}
}

// Len returns the number of distinct keys.
func (h *Headers) Len() int {
	return len(h.entries)
}

func (h *Headers) Empty() bool {
	return len(h.entries) == 0
}

// Has indicates whether there is an entry under the key.
func (h *Headers) Has(key string) bool {
	return h.find(key) != -1
}

// Get returns the first value under the key, if any.
func (h *Headers) Get(key string) (Value, bool) {
	idx := h.find(key)
	if idx == -1 {
		return "", false
	}

	return h.entries[idx].first, true
}

// Value returns the first value under the key, or an empty string if the
// key is absent.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value under the key or the fallback.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return string(value)
}

// GetAll returns a single-pass iterator over all values under the key, in
// insertion order.
func (h *Headers) GetAll(key string) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		idx := h.find(key)
		if idx == -1 {
			return
		}

		if !yield(h.entries[idx].first) {
			return
		}

		for _, value := range h.entries[idx].rest {
			if !yield(value) {
				return
			}
		}
	}
}

// Set replaces all values under the key with exactly the one given,
// returning the previous first value if the key existed. A new key is
// appended at the end, keeping declaration order.
func (h *Headers) Set(key Name, value Value) (prev Value, replaced bool) {
	idx := h.find(string(key))
	if idx == -1 {
		h.entries = append(h.entries, entry{key: key, first: value})
		return "", false
	}

	prev = h.entries[idx].first
	h.entries[idx].first = value
	h.entries[idx].rest = h.entries[idx].rest[:0]

	return prev, true
}

// Add appends one more value under the key, creating the entry if the key
// is new. Reports whether the key already existed.
func (h *Headers) Add(key Name, value Value) (existed bool) {
	idx := h.find(string(key))
	if idx == -1 {
		h.entries = append(h.entries, entry{key: key, first: value})
		return false
	}

	h.entries[idx].rest = append(h.entries[idx].rest, value)

	return true
}

// Delete removes the whole entry, all values included, returning the former
// first value if the key existed.
func (h *Headers) Delete(key string) (prev Value, existed bool) {
	idx := h.find(key)
	if idx == -1 {
		return "", false
	}

	prev = h.entries[idx].first
	h.entries = append(h.entries[:idx], h.entries[idx+1:]...)

	return prev, true
}

// Keys returns an iterator over the keys in declaration order.
func (h *Headers) Keys() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		for i := range h.entries {
			if !yield(h.entries[i].key) {
				return
			}
		}
	}
}

// Pairs returns an iterator over flattened (key, value) pairs: a key with
// multiple values is yielded once per value, in insertion order.
func (h *Headers) Pairs() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		for i := range h.entries {
			e := &h.entries[i]
			if !yield(e.key, e.first) {
				return
			}

			for _, value := range e.rest {
				if !yield(e.key, value) {
					return
				}
			}
		}
	}
}

// Clear drops all entries, keeping the allocated space for reuse.
func (h *Headers) Clear() {
	h.entries = h.entries[:0]
}

// Clone creates a deep copy that stays valid however the original is
// mutated afterwards.
func (h *Headers) Clone() *Headers {
	clone := &Headers{
		entries: make([]entry, len(h.entries)),
	}

	copy(clone.entries, h.entries)
	for i := range clone.entries {
		if rest := clone.entries[i].rest; rest != nil {
			clone.entries[i].rest = make([]Value, len(rest))
			copy(clone.entries[i].rest, rest)
		}
	}

	return clone
}

func (h *Headers) find(key string) int {
	for i := range h.entries {
		if strcomp.EqualFold(string(h.entries[i].key), key) {
			return i
		}
	}

	return -1
}
