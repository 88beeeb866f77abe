package backing

import "iter"

// HashMap is a Map over the builtin map type. It is not safe for concurrent
// use.
type HashMap[K comparable, V any] struct {
	entries map[K]V
}

var _ Map[string, struct{}] = (*HashMap[string, struct{}])(nil)

func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		entries: make(map[K]V),
	}
}

// NewHashMapWithSize returns a HashMap with room for size entries.
func NewHashMapWithSize[K comparable, V any](size int) *HashMap[K, V] {
	return &HashMap[K, V]{
		entries: make(map[K]V, size),
	}
}

func (m *HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *HashMap[K, V]) Put(k K, v V) (V, bool) {
	prev, ok := m.entries[k]
	m.entries[k] = v
	return prev, ok
}

func (m *HashMap[K, V]) Delete(k K) (V, bool) {
	prev, ok := m.entries[k]
	if ok {
		delete(m.entries, k)
	}
	return prev, ok
}

func (m *HashMap[K, V]) Len() int {
	return len(m.entries)
}

func (m *HashMap[K, V]) Clear() {
	clear(m.entries)
}

func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}
