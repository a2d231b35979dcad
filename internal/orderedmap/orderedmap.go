package orderedmap

import "errors"

var ErrDuplicateEntry = errors.New("duplicate entry")

// Map is a map that remembers the order in which keys were first set
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set adds a new entry. Setting an existing key fails with
// ErrDuplicateEntry and leaves the stored value alone.
func (m *Map[K, V]) Set(key K, value V) error {
	_, exists := m.keys[key]
	if exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Keys() []K {
	return append([]K(nil), m.entries...)
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}
