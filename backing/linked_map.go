package backing

import (
	"container/list"
	"iter"
)

// LinkedMap is a Map that iterates in insertion order. Putting a key that is
// already present keeps its original position.
type LinkedMap[K comparable, V any] struct {
	index map[K]*list.Element
	order *list.List
}

var _ Map[string, struct{}] = (*LinkedMap[string, struct{}])(nil)

func NewLinkedMap[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		index: make(map[K]*list.Element),
		order: list.New(),
	}
}

func (m *LinkedMap[K, V]) Get(k K) (v V, ok bool) {
	e, ok := m.index[k]
	if !ok {
		return v, false
	}
	return e.Value.(*entry[K, V]).value, true
}

func (m *LinkedMap[K, V]) Put(k K, v V) (prev V, ok bool) {
	if e, found := m.index[k]; found {
		entry := e.Value.(*entry[K, V])
		prev = entry.value
		entry.value = v
		return prev, true
	}

	m.index[k] = m.order.PushBack(&entry[K, V]{key: k, value: v})

	return prev, false
}

func (m *LinkedMap[K, V]) Delete(k K) (prev V, ok bool) {
	e, found := m.index[k]
	if !found {
		return prev, false
	}

	delete(m.index, k)
	m.order.Remove(e)

	return e.Value.(*entry[K, V]).value, true
}

func (m *LinkedMap[K, V]) Len() int {
	return len(m.index)
}

func (m *LinkedMap[K, V]) Clear() {
	clear(m.index)
	m.order.Init()
}

// All iterates in insertion order over the entries present when iteration
// starts. Entries deleted before they are reached are skipped.
func (m *LinkedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.snapshot() {
			entry := e.Value.(*entry[K, V])
			if m.index[entry.key] != e {
				continue
			}

			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}

func (m *LinkedMap[K, V]) snapshot() []*list.Element {
	elements := make([]*list.Element, 0, m.order.Len())

	for e := m.order.Front(); e != nil; e = e.Next() {
		elements = append(elements, e)
	}

	return elements
}
