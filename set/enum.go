package set

import (
	"iter"
	"math/bits"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// EnumSet is a bit set over the values of an integer enum type. The values
// function returns every value of the enum in declaration order; gen-enum
// generates one named <Type>List. Iteration follows that order.
type EnumSet[E constraints.Integer] struct {
	viewOps[E]
	values  []E
	ordinal map[E]int
	words   []uint64
	size    int
}

var _ Interface[int] = (*EnumSet[int])(nil)

// NoneOf returns an empty enum set.
func NoneOf[E constraints.Integer](values func() []E) *EnumSet[E] {
	mustNotBeNil(values, "values")

	universe := values()
	s := &EnumSet[E]{
		values:  universe,
		ordinal: make(map[E]int, len(universe)),
		words:   make([]uint64, (len(universe)+63)/64),
	}
	s.self = s

	for i, v := range universe {
		if _, ok := s.ordinal[v]; !ok {
			s.ordinal[v] = i
		}
	}

	return s
}

// AllOf returns an enum set holding every value of the enum.
func AllOf[E constraints.Integer](values func() []E) *EnumSet[E] {
	s := NoneOf(values)

	for _, v := range s.values {
		s.set(s.ordinal[v])
	}

	return s
}

// NewEnumSet returns an enum set holding items. It fails if an item is not a
// value of the enum.
func NewEnumSet[E constraints.Integer](values func() []E, items ...E) (*EnumSet[E], error) {
	s := NoneOf(values)

	for _, item := range items {
		if _, err := s.Add(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NewEnumSetFromSeq returns an enum set holding the items of seq.
func NewEnumSetFromSeq[E constraints.Integer](values func() []E, seq iter.Seq[E]) (*EnumSet[E], error) {
	s := NoneOf(values)

	for item := range seq {
		if _, err := s.Add(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ComplementOf returns an enum set of every value of the enum that is not in
// c. Items of c that are not values of the enum are ignored.
func ComplementOf[E constraints.Integer](values func() []E, c View[E]) *EnumSet[E] {
	mustNotBeNil(c, "collection")

	s := AllOf(values)

	for item := range c.All() {
		s.Remove(item)
	}

	return s
}

// ImmutableEnumSet returns an immutable set of the given enum values, in
// declaration order.
func ImmutableEnumSet[E constraints.Integer](values func() []E, first E, rest ...E) (*Immutable[E], error) {
	s, err := NewEnumSet(values, append([]E{first}, rest...)...)
	if err != nil {
		return nil, err
	}

	return s.ImmutableCopy(), nil
}

// Complement returns a new enum set of the values not in s.
func (s *EnumSet[E]) Complement() *EnumSet[E] {
	c := s.empty()

	for i, v := range s.values {
		if s.ordinal[v] == i && !s.has(i) {
			c.set(i)
		}
	}

	return c
}

// Add a value to the set. Values outside the enum are rejected with
// ErrNotPermitted.
func (s *EnumSet[E]) Add(item E) (bool, error) {
	i, ok := s.ordinal[item]
	if !ok {
		return false, errors.Wrapf(ErrNotPermitted, "%d is not a value of the enum", item)
	}

	if s.has(i) {
		return false, nil
	}

	s.set(i)

	return true, nil
}

// Remove a value from the set.
func (s *EnumSet[E]) Remove(item E) bool {
	i, ok := s.ordinal[item]
	if !ok || !s.has(i) {
		return false
	}

	s.words[i/64] &^= 1 << (uint(i) % 64)
	s.size--

	return true
}

// Clear removes all values from the set.
func (s *EnumSet[E]) Clear() bool {
	clear(s.words)
	s.size = 0

	return true
}

// Contains determines whether the provided items are in the set.
func (s *EnumSet[E]) Contains(items ...E) bool {
	for _, item := range items {
		i, ok := s.ordinal[item]
		if !ok || !s.has(i) {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *EnumSet[E]) Length() int {
	return s.size
}

// IsEmpty returns whether the set has no items.
func (s *EnumSet[E]) IsEmpty() bool {
	return s.size == 0
}

// All returns an iterator over the values in declaration order.
func (s *EnumSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for w := range s.words {
			for word := s.words[w]; word != 0; word &= word - 1 {
				i := w*64 + bits.TrailingZeros64(word)
				if !yield(s.values[i]) {
					return
				}
			}
		}
	}
}

func (s *EnumSet[E]) empty() *EnumSet[E] {
	c := &EnumSet[E]{
		values:  s.values,
		ordinal: s.ordinal,
		words:   make([]uint64, len(s.words)),
	}
	c.self = c

	return c
}

func (s *EnumSet[E]) has(i int) bool {
	return s.words[i/64]&(1<<(uint(i)%64)) != 0
}

func (s *EnumSet[E]) set(i int) {
	if s.has(i) {
		return
	}

	s.words[i/64] |= 1 << (uint(i) % 64)
	s.size++
}
