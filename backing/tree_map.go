package backing

import (
	"cmp"
	"iter"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const treeDegree = 32

// TreeMap is a Map that keeps its keys sorted by a comparator. Two keys the
// comparator reports as equal are the same key, whatever == says.
type TreeMap[K comparable, V any] struct {
	compare func(a, b K) int
	t       *btree.BTreeG[entry[K, V]]
}

var (
	_ Map[string, struct{}] = (*TreeMap[string, struct{}])(nil)
	_ KeyChecker[string]    = (*TreeMap[string, struct{}])(nil)
)

// NewTreeMap returns a TreeMap ordered by compare, which must return a
// negative number, zero or a positive number as a sorts before, with or after
// b.
func NewTreeMap[K comparable, V any](compare func(a, b K) int) (*TreeMap[K, V], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}

	return newTreeMap[K, V](compare), nil
}

// NewOrderedTreeMap returns a TreeMap in the natural order of K.
func NewOrderedTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return newTreeMap[K, V](cmp.Compare[K])
}

func newTreeMap[K comparable, V any](compare func(a, b K) int) *TreeMap[K, V] {
	less := func(a, b entry[K, V]) bool {
		return compare(a.key, b.key) < 0
	}

	return &TreeMap[K, V]{
		compare: compare,
		t:       btree.NewG[entry[K, V]](treeDegree, less),
	}
}

// Comparator returns the function the map is ordered by.
func (m *TreeMap[K, V]) Comparator() func(a, b K) int {
	return m.compare
}

// CheckKey rejects nil keys, which a comparator cannot be expected to order.
func (m *TreeMap[K, V]) CheckKey(k K) error {
	if IsNil(k) {
		return errors.Wrap(ErrNilKey, "tree map")
	}
	return nil
}

func (m *TreeMap[K, V]) Get(k K) (v V, ok bool) {
	if IsNil(k) {
		return v, false
	}

	e, ok := m.t.Get(entry[K, V]{key: k})
	return e.value, ok
}

// Put keeps the key already stored when an equivalent key is present and only
// replaces its value.
func (m *TreeMap[K, V]) Put(k K, v V) (prev V, ok bool) {
	if err := m.CheckKey(k); err != nil {
		panic(err)
	}

	if e, found := m.t.Get(entry[K, V]{key: k}); found {
		m.t.ReplaceOrInsert(entry[K, V]{key: e.key, value: v})
		return e.value, true
	}

	m.t.ReplaceOrInsert(entry[K, V]{key: k, value: v})

	return prev, false
}

func (m *TreeMap[K, V]) Delete(k K) (prev V, ok bool) {
	if IsNil(k) {
		return prev, false
	}

	e, ok := m.t.Delete(entry[K, V]{key: k})
	return e.value, ok
}

func (m *TreeMap[K, V]) Len() int {
	return m.t.Len()
}

func (m *TreeMap[K, V]) Clear() {
	m.t.Clear(false)
}

// All iterates in ascending key order over the keys present when iteration
// starts. Keys deleted before they are reached are skipped.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.snapshot() {
			cur, ok := m.t.Get(e)
			if !ok {
				continue
			}

			if !yield(cur.key, cur.value) {
				return
			}
		}
	}
}

func (m *TreeMap[K, V]) snapshot() []entry[K, V] {
	entries := make([]entry[K, V], 0, m.t.Len())

	m.t.Ascend(func(e entry[K, V]) bool {
		entries = append(entries, e)
		return true
	})

	return entries
}
