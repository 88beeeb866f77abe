package settest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// IterationTests checks All, ForEach, ToSlice, Length and IsEmpty against the
// elements a subject was built with.
func IterationTests[T comparable]() []Test[T] {
	return []Test[T]{
		{
			Name: "IteratesEveryElementOnce",
			Run: func(t *testing.T, s *Subject[T]) {
				var seen []T
				for item := range s.View().All() {
					seen = append(seen, item)
				}

				assert.ElementsMatch(t, s.Elements(), seen)
			},
		},
		{
			Name:        "IteratesInKnownOrder",
			Requirement: Requirement{Present: []Feature{KnownOrder}},
			Run: func(t *testing.T, s *Subject[T]) {
				assert.Equal(t, s.Elements(), s.View().ToSlice(), "iteration order")
			},
		},
		{
			Name: "ToSliceMatchesElements",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.ElementsMatch(t, s.Elements(), s.View().ToSlice())
			},
		},
		{
			Name: "Length",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.Equal(t, s.Size.Count(), s.View().Length())
			},
		},
		{
			Name: "IsEmpty",
			Run: func(t *testing.T, s *Subject[T]) {
				assert.Equal(t, s.Size == Zero, s.View().IsEmpty())
			},
		},
		{
			Name:        "StopsEarly",
			Requirement: Requirement{AbsentSizes: []Size{Zero, One}},
			Run: func(t *testing.T, s *Subject[T]) {
				n := 0
				for range s.View().All() {
					n++
					break
				}
				assert.Equal(t, 1, n)

				visited := 0
				s.View().ForEach(func(T) bool {
					visited++
					return true
				})
				assert.Equal(t, 1, visited, "ForEach should stop when the function returns true")
			},
		},
	}
}
