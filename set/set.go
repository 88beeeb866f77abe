package set

import (
	"iter"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Set is a hash set guarded by a RWMutex. It is safe for concurrent use.
type Set[T comparable] struct {
	m  map[T]struct{}
	mu sync.RWMutex
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// NewSet returns a set initialized with the provided items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		m: make(map[T]struct{}, len(items)),
	}

	for _, item := range items {
		s.m[item] = struct{}{}
	}

	return s
}

// NewHashSet is an alias of NewSet.
func NewHashSet[T comparable](items ...T) *Set[T] {
	return NewSet(items...)
}

// NewHashSetWithExpectedSize returns an empty set with enough room for
// expectedSize items.
func NewHashSetWithExpectedSize[T comparable](expectedSize int) (*Set[T], error) {
	if expectedSize < 0 {
		return nil, ErrNegativeSize
	}

	return &Set[T]{
		m: make(map[T]struct{}, expectedSize),
	}, nil
}

// FromSeq returns a set containing the items of seq. seq is ranged over
// exactly once.
func FromSeq[T comparable](seq iter.Seq[T]) *Set[T] {
	s := NewSet[T]()

	for item := range seq {
		s.m[item] = struct{}{}
	}

	return s
}

// Add an item to the set. A hash set permits every item.
func (s *Set[T]) Add(item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.m)
	s.m[item] = struct{}{}

	return before != len(s.m), nil
}

// Remove an item from the set.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.m)
	delete(s.m, item)

	return before != len(s.m)
}

// Clears removes all items from the set.
func (s *Set[T]) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[T]struct{})

	return len(s.m) == 0
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range items {
		if !s.contains(item) {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m)
}

// IsEmpty returns whether the set has no items.
func (s *Set[T]) IsEmpty() bool {
	return s.Length() == 0
}

// All returns an iterator over a snapshot of the set, so the set may be
// modified while iterating.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.ToSlice() {
			if !yield(item) {
				return
			}
		}
	}
}

// ForEach iterates over items and executes the provided function against each
// item.
func (s *Set[T]) ForEach(fn func(T) bool) {
	forEach(s.All(), fn)
}

// String provides a string representation of the set.
func (s *Set[T]) String() string {
	return format(s.All())
}

// ToSlice returns the set as a slice.
func (s *Set[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.m))

	for item := range s.m {
		items = append(items, item)
	}

	return items
}

// MarshalLogArray lets the set be logged with zap.Array.
func (s *Set[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	return marshalLogArray(s.All(), enc)
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other View[T]) bool {
	return IsSuperset[T](s, other)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other View[T]) bool {
	return IsSubset[T](s, other)
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *Set[T]) Equal(other View[T]) bool {
	return Equal[T](s, other)
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set[T]) Intersect(other View[T]) *Set[T] {
	result := NewSet[T]()

	// To avoid checking every item of both sets, go over the smaller one.
	small, large := View[T](s), other
	if small.Length() > large.Length() {
		small, large = large, small
	}

	for item := range small.All() {
		if large.Contains(item) {
			result.m[item] = struct{}{}
		}
	}

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other View[T]) *Set[T] {
	result := NewSet[T]()

	for item := range s.All() {
		if !other.Contains(item) {
			result.m[item] = struct{}{}
		}
	}

	return result
}

// SymmetricDifference returns a new set with all items which are in either set,
// but not both.
func (s *Set[T]) SymmetricDifference(other View[T]) *Set[T] {
	result := s.Difference(other)

	for item := range other.All() {
		if !s.Contains(item) {
			result.m[item] = struct{}{}
		}
	}

	return result
}

func (s *Set[T]) contains(item T) bool {
	_, ok := s.m[item]
	return ok
}
