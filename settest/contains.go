package settest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ContainsTests checks membership queries.
func ContainsTests[T comparable]() []Test[T] {
	return []Test[T]{
		{
			Name:        "ContainsYes",
			Requirement: Requirement{AbsentSizes: []Size{Zero}},
			Run: func(t *testing.T, s *Subject[T]) {
				assert.True(t, s.View().Contains(s.Generator.Samples[0]), "Contains(present) should return true")
			},
		},
		{
			Name: "ContainsNo",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.False(t, s.View().Contains(s.Absent()), "Contains(notPresent) should return false")
			},
		},
		{
			Name: "ContainsAllElements",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.True(t, s.View().Contains(s.Elements()...), "Contains(all elements) should return true")
			},
		},
		{
			Name:        "ContainsSomeAbsent",
			Requirement: Requirement{AbsentSizes: []Size{Zero}},
			Run: func(t *testing.T, s *Subject[T]) {
				assert.False(t, s.View().Contains(s.Generator.Samples[0], s.Absent()),
					"Contains should return false when any item is absent")
			},
		},
		{
			Name:        "ContainsNilNotContained",
			Requirement: Requirement{NeedsNil: true},
			Run: func(t *testing.T, s *Subject[T]) {
				nilValue, _ := s.Nil()
				assert.False(t, s.View().Contains(nilValue), "Contains(nil) should return false")
			},
		},
		{
			Name: "ContainsNilContained",
			Requirement: Requirement{
				Present:     []Feature{AllowsNilValues},
				AbsentSizes: []Size{Zero},
				NeedsNil:    true,
			},
			Run: func(t *testing.T, s *Subject[T]) {
				nilValue, _ := s.Nil()
				s.Recreate(append(s.Samples(s.Size.Count()-1), nilValue)...)

				assert.True(t, s.View().Contains(nilValue), "Contains(nil) should return true")
			},
		},
	}
}
