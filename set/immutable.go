package set

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/rdeusser/sets/backing"
)

// Immutable is a set that cannot change after it is built. It iterates in the
// order its items were first given. It never holds nil; building one from a
// nil item panics with ErrNotPermitted.
type Immutable[T comparable] struct {
	viewOps[T]
	items []T
	index map[T]struct{}
}

// Of returns an immutable set of items, minus duplicates. It panics if an
// item is nil.
func Of[T comparable](items ...T) *Immutable[T] {
	s := newImmutable[T](len(items))

	for _, item := range items {
		s.add(item)
	}

	return s
}

// CopyOf returns an immutable set of the items of seq, minus duplicates. seq
// is ranged over exactly once. It panics if an item is nil.
func CopyOf[T comparable](seq iter.Seq[T]) *Immutable[T] {
	s := newImmutable[T](0)

	for item := range seq {
		s.add(item)
	}

	return s
}

// CopyOfView returns an immutable copy of v. An *Immutable is returned as is.
func CopyOfView[T comparable](v View[T]) *Immutable[T] {
	mustNotBeNil(v, "view")

	if s, ok := v.(*Immutable[T]); ok {
		return s
	}

	return CopyOf(v.All())
}

func newImmutable[T comparable](size int) *Immutable[T] {
	s := &Immutable[T]{
		items: make([]T, 0, size),
		index: make(map[T]struct{}, size),
	}
	s.self = s

	return s
}

func (s *Immutable[T]) add(item T) {
	if backing.IsNil(item) {
		panic(errors.Wrap(ErrNotPermitted, "immutable set: nil item"))
	}

	if _, ok := s.index[item]; ok {
		return
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

// Contains determines whether the provided items are in the set.
func (s *Immutable[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, ok := s.index[item]; !ok {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Immutable[T]) Length() int {
	return len(s.items)
}

// IsEmpty returns whether the set has no items.
func (s *Immutable[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// All returns an iterator over the items in the order they were first given.
func (s *Immutable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ImmutableCopy returns s, which already cannot change.
func (s *Immutable[T]) ImmutableCopy() *Immutable[T] {
	return s
}
