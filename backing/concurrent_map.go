package backing

import (
	"iter"
	"sync"

	"github.com/pkg/errors"
)

// ConcurrentMap is a Map that is safe for concurrent use. It does not accept
// nil keys.
type ConcurrentMap[K comparable, V any] struct {
	entries map[K]V
	mu      sync.RWMutex
}

var (
	_ Map[string, struct{}] = (*ConcurrentMap[string, struct{}])(nil)
	_ KeyChecker[string]    = (*ConcurrentMap[string, struct{}])(nil)
)

func NewConcurrentMap[K comparable, V any]() *ConcurrentMap[K, V] {
	return &ConcurrentMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *ConcurrentMap[K, V]) CheckKey(k K) error {
	if IsNil(k) {
		return errors.Wrap(ErrNilKey, "concurrent map")
	}
	return nil
}

func (m *ConcurrentMap[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[k]
	return v, ok
}

func (m *ConcurrentMap[K, V]) Put(k K, v V) (V, bool) {
	if err := m.CheckKey(k); err != nil {
		panic(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.entries[k]
	m.entries[k] = v

	return prev, ok
}

func (m *ConcurrentMap[K, V]) Delete(k K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.entries[k]
	if ok {
		delete(m.entries, k)
	}

	return prev, ok
}

func (m *ConcurrentMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

func (m *ConcurrentMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.entries)
}

// All iterates over a snapshot taken when iteration starts, so yield may
// modify the map.
func (m *ConcurrentMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.snapshot() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (m *ConcurrentMap[K, V]) snapshot() []entry[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]entry[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		entries = append(entries, entry[K, V]{key: k, value: v})
	}

	return entries
}
