package set

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/rdeusser/sets/backing"
)

// MapSet is a set backed by a map. It has the ordering, concurrency and
// performance characteristics of the map it was built on.
type MapSet[T comparable] struct {
	viewOps[T]
	m backing.Map[T, struct{}]
}

var _ Interface[string] = (*MapSet[string])(nil)

// NewSetFromMap returns a set backed by m. The map must be empty and should
// not be used directly afterwards; the set reflects any change made to it.
func NewSetFromMap[T comparable](m backing.Map[T, struct{}]) (*MapSet[T], error) {
	if backing.IsNil(m) {
		return nil, errors.Wrap(ErrNilArgument, "map")
	}

	if n := m.Len(); n != 0 {
		return nil, errors.Wrapf(ErrNotEmpty, "map has %d entries", n)
	}

	return newMapSet(m), nil
}

func newMapSet[T comparable](m backing.Map[T, struct{}]) *MapSet[T] {
	s := &MapSet[T]{m: m}
	s.self = s
	return s
}

// NewLinkedHashSet returns a set that iterates in insertion order.
func NewLinkedHashSet[T comparable](items ...T) *MapSet[T] {
	s := newMapSet[T](backing.NewLinkedMap[T, struct{}]())

	for _, item := range items {
		s.m.Put(item, struct{}{})
	}

	return s
}

// NewLinkedHashSetFromSeq returns a set holding the items of seq in the order
// they were first seen.
func NewLinkedHashSetFromSeq[T comparable](seq iter.Seq[T]) *MapSet[T] {
	s := NewLinkedHashSet[T]()

	for item := range seq {
		s.m.Put(item, struct{}{})
	}

	return s
}

// NewTreeSet returns a set sorted by the natural order of its items.
func NewTreeSet[T constraints.Ordered](items ...T) *MapSet[T] {
	s := newMapSet[T](backing.NewOrderedTreeMap[T, struct{}]())

	for _, item := range items {
		s.m.Put(item, struct{}{})
	}

	return s
}

// NewTreeSetFromSeq returns a set holding the items of seq sorted by their
// natural order.
func NewTreeSetFromSeq[T constraints.Ordered](seq iter.Seq[T]) *MapSet[T] {
	s := NewTreeSet[T]()

	for item := range seq {
		s.m.Put(item, struct{}{})
	}

	return s
}

// NewTreeSetFunc returns a set sorted by compare. Items compare reports as
// equal are treated as the same item. Nil items are not permitted.
func NewTreeSetFunc[T comparable](compare func(a, b T) int, items ...T) (*MapSet[T], error) {
	m, err := backing.NewTreeMap[T, struct{}](compare)
	if err != nil {
		return nil, err
	}

	s := newMapSet[T](m)

	for _, item := range items {
		if _, err := s.Add(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NewConcurrentHashSet returns a set that is safe for concurrent use. Unlike
// Set it does not permit nil items.
func NewConcurrentHashSet[T comparable]() *MapSet[T] {
	return newMapSet[T](backing.NewConcurrentMap[T, struct{}]())
}

// NewConcurrentHashSetFromSeq returns a concurrent set holding the items of
// seq.
func NewConcurrentHashSetFromSeq[T comparable](seq iter.Seq[T]) (*MapSet[T], error) {
	s := NewConcurrentHashSet[T]()

	for item := range seq {
		if _, err := s.Add(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add an item to the set. Items the backing map refuses are reported as
// ErrNotPermitted.
func (s *MapSet[T]) Add(item T) (bool, error) {
	if c, ok := s.m.(backing.KeyChecker[T]); ok {
		if err := c.CheckKey(item); err != nil {
			return false, errors.Wrapf(ErrNotPermitted, "%v", err)
		}
	}

	_, existed := s.m.Put(item, struct{}{})

	return !existed, nil
}

// Remove an item from the set.
func (s *MapSet[T]) Remove(item T) bool {
	_, ok := s.m.Delete(item)
	return ok
}

// Clear removes all items from the set.
func (s *MapSet[T]) Clear() bool {
	s.m.Clear()
	return true
}

// Contains determines whether the provided items are in the set.
func (s *MapSet[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, ok := s.m.Get(item); !ok {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *MapSet[T]) Length() int {
	return s.m.Len()
}

// IsEmpty returns whether the set has no items.
func (s *MapSet[T]) IsEmpty() bool {
	return s.m.Len() == 0
}

// All returns an iterator over the items in the order of the backing map.
func (s *MapSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m.All() {
			if !yield(item) {
				return
			}
		}
	}
}
