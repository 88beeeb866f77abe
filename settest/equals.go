package settest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdeusser/sets/set"
)

// EqualsTests checks set.Equal between a subject and plain hash sets.
func EqualsTests[T comparable]() []Test[T] {
	return []Test[T]{
		{
			Name: "EqualsOtherSetWithSameElements",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.True(t, set.Equal[T](s.View(), HashSet(s.Elements()...)),
					"a set should equal any other set containing the same elements")
			},
		},
		{
			Name:        "EqualsOtherSetWithDifferentElements",
			Requirement: Requirement{AbsentSizes: []Size{Zero}},
			Run: func(t *testing.T, s *Subject[T]) {
				other := HashSet(s.Samples(s.Size.Count() - 1)...)
				_, _ = other.Add(s.Absent())

				assert.False(t, set.Equal[T](s.View(), other),
					"a set should not equal another set containing different elements")
			},
		},
		{
			Name: "EqualsContainingNil",
			Requirement: Requirement{
				Present:     []Feature{AllowsNilValues},
				AbsentSizes: []Size{Zero},
				NeedsNil:    true,
			},
			Run: func(t *testing.T, s *Subject[T]) {
				nilValue, _ := s.Nil()
				elements := append(s.Samples(s.Size.Count()-1), nilValue)

				s.Recreate(elements...)

				assert.True(t, set.Equal[T](s.View(), HashSet(elements...)),
					"a set should equal any other set containing the same elements, even if some are nil")
			},
		},
		{
			Name:        "EqualsOtherContainsNil",
			Requirement: Requirement{AbsentSizes: []Size{Zero}, NeedsNil: true},
			Run: func(t *testing.T, s *Subject[T]) {
				nilValue, _ := s.Nil()
				other := HashSet(append(s.Samples(s.Size.Count()-1), nilValue)...)

				assert.False(t, set.Equal[T](s.View(), other),
					"two sets should not be equal if exactly one of them contains nil")
			},
		},
		{
			Name:        "EqualsSmallerSet",
			Requirement: Requirement{AbsentSizes: []Size{Zero}},
			Run: func(t *testing.T, s *Subject[T]) {
				assert.False(t, set.Equal[T](s.View(), HashSet(s.Samples(s.Size.Count()-1)...)),
					"sets of different sizes should not be equal")
			},
		},
		{
			Name: "EqualsLargerSet",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.False(t, set.Equal[T](s.View(), HashSet(s.Samples(s.Size.Count()+1)...)),
					"sets of different sizes should not be equal")
			},
		},
		{
			Name: "EqualsIsSymmetric",
			Run: func(t *testing.T, s *Subject[T]) {
				other := HashSet(s.Elements()...)
				assert.Equal(t, set.Equal[T](s.View(), other), set.Equal[T](other, s.View()))
			},
		},
	}
}
