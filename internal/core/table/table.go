// Package table provides read-only lookup tables that keep declaration order
// and reject duplicate keys at construction time.
package table

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// Entry is one key/value pair of a Table.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is an immutable, ordered mapping from a token to a value.
type Table[V any] struct {
	name    string
	entries []Entry[V]
	index   map[string]int
}

// New builds a Table from entries. It fails on empty or duplicate keys.
func New[V any](name string, entries []Entry[V]) (*Table[V], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("table %s: %w", name, domain.ErrEmptyPattern)
	}

	t := &Table[V]{
		name:    name,
		entries: make([]Entry[V], len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("table %s entry %d: %w", name, i, domain.ErrEmptyKey)
		}
		if prev, ok := t.index[e.Key]; ok {
			return nil, fmt.Errorf("table %s: key %q at entries %d and %d: %w", name, e.Key, prev, i, domain.ErrDuplicateKey)
		}
		t.index[e.Key] = i
		t.entries[i] = e
	}
	return t, nil
}

// MustNew is like New but panics on error. It is meant for package-level tables.
func MustNew[V any](name string, entries []Entry[V]) *Table[V] {
	t, err := New(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table[V]) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	return len(t.entries)
}

// Lookup returns the value stored under key.
func (t *Table[V]) Lookup(key string) (V, bool) {
	i, ok := t.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return t.entries[i].Value, true
}

// Entries returns a copy of the entries in declaration order.
func (t *Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the keys in declaration order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Alternation returns a regexp alternation of all keys, longest first, so
// that a key is never shadowed by one of its prefixes.
func (t *Table[V]) Alternation() string {
	keys := t.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}
