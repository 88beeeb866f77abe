package set

import (
	"iter"

	"github.com/pkg/errors"
)

// FilteredSet is a live view of the items of a set that satisfy a predicate.
// Changes to the view write through to the unfiltered set and changes to the
// unfiltered set show through the view.
//
// Length and IsEmpty walk the whole unfiltered set. When a live view is not
// needed, copy the filtered set instead.
type FilteredSet[T comparable] struct {
	viewOps[T]
	unfiltered Interface[T]
	predicate  Predicate[T]
}

var _ Interface[string] = (*FilteredSet[string])(nil)

// Filter returns the items of unfiltered that satisfy predicate. Filtering a
// FilteredSet combines both predicates over the original set, so Remove and
// Clear keep working on the result.
func Filter[T comparable](unfiltered Interface[T], predicate Predicate[T]) *FilteredSet[T] {
	mustNotBeNil(unfiltered, "unfiltered")
	mustNotBeNil(predicate, "predicate")

	if filtered, ok := unfiltered.(*FilteredSet[T]); ok {
		outer := filtered.predicate
		return newFilteredSet(filtered.unfiltered, func(item T) bool {
			return outer(item) && predicate(item)
		})
	}

	return newFilteredSet(unfiltered, predicate)
}

func newFilteredSet[T comparable](unfiltered Interface[T], predicate Predicate[T]) *FilteredSet[T] {
	s := &FilteredSet[T]{
		unfiltered: unfiltered,
		predicate:  predicate,
	}
	s.self = s

	return s
}

// Add an item to the unfiltered set. Items that do not satisfy the predicate
// are rejected with ErrNotPermitted.
func (s *FilteredSet[T]) Add(item T) (bool, error) {
	if !s.predicate(item) {
		return false, errors.Wrapf(ErrNotPermitted, "%v does not satisfy the filter", item)
	}

	return s.unfiltered.Add(item)
}

// Remove an item from the unfiltered set if it satisfies the predicate.
func (s *FilteredSet[T]) Remove(item T) bool {
	if !s.predicate(item) {
		return false
	}

	return s.unfiltered.Remove(item)
}

// Clear removes the items that satisfy the predicate from the unfiltered set.
// Every other item is left in place.
func (s *FilteredSet[T]) Clear() bool {
	for _, item := range s.ToSlice() {
		s.unfiltered.Remove(item)
	}

	return true
}

// Contains determines whether the provided items are in the set and satisfy
// the predicate.
func (s *FilteredSet[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !s.predicate(item) || !s.unfiltered.Contains(item) {
			return false
		}
	}

	return true
}

// Length returns the number of items that satisfy the predicate.
func (s *FilteredSet[T]) Length() int {
	return count(s.All())
}

// IsEmpty returns whether no item satisfies the predicate.
func (s *FilteredSet[T]) IsEmpty() bool {
	for range s.All() {
		return false
	}

	return true
}

// All returns an iterator over the items that satisfy the predicate, in the
// order of the unfiltered set.
func (s *FilteredSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.unfiltered.All() {
			if !s.predicate(item) {
				continue
			}

			if !yield(item) {
				return
			}
		}
	}
}
