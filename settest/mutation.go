package settest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdeusser/sets/set"
)

// AddTests checks Add on subjects that support it.
func AddTests[T comparable]() []Test[T] {
	return []Test[T]{
		{
			Name:        "AddSupportedNotPresent",
			Requirement: Requirement{Present: []Feature{SupportsAdd}},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)

				added, err := m.Add(s.Absent())
				require.NoError(t, err)
				assert.True(t, added, "Add(notPresent) should return true")
				assert.True(t, m.Contains(s.Absent()))
				assert.Equal(t, s.Size.Count()+1, m.Length())
			},
		},
		{
			Name: "AddSupportedPresent",
			Requirement: Requirement{
				Present:     []Feature{SupportsAdd},
				AbsentSizes: []Size{Zero},
			},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)

				added, err := m.Add(s.Generator.Samples[0])
				require.NoError(t, err)
				assert.False(t, added, "Add(present) should return false")
				assert.Equal(t, s.Size.Count(), m.Length())
			},
		},
		{
			Name: "AddNilSupported",
			Requirement: Requirement{
				Present:  []Feature{SupportsAdd, AllowsNilValues},
				NeedsNil: true,
			},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)
				nilValue, _ := s.Nil()

				added, err := m.Add(nilValue)
				require.NoError(t, err)
				assert.True(t, added, "Add(nil) should return true")
				assert.True(t, m.Contains(nilValue))
			},
		},
		{
			Name: "AddNilUnsupported",
			Requirement: Requirement{
				Present:  []Feature{SupportsAdd},
				Absent:   []Feature{AllowsNilValues},
				NeedsNil: true,
			},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)
				nilValue, _ := s.Nil()

				added, err := m.Add(nilValue)
				assert.ErrorIs(t, err, set.ErrNotPermitted, "Add(nil) should be rejected")
				assert.False(t, added)
				assert.Equal(t, s.Size.Count(), m.Length(), "a rejected Add should not change the set")
			},
		},
	}
}

// RemoveTests checks Remove and Clear on subjects that support them.
func RemoveTests[T comparable]() []Test[T] {
	return []Test[T]{
		{
			Name: "RemovePresent",
			Requirement: Requirement{
				Present:     []Feature{SupportsRemove},
				AbsentSizes: []Size{Zero},
			},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)

				assert.True(t, m.Remove(s.Generator.Samples[0]), "Remove(present) should return true")
				assert.False(t, m.Contains(s.Generator.Samples[0]))
				assert.Equal(t, s.Size.Count()-1, m.Length())
			},
		},
		{
			Name:        "RemoveNotPresent",
			Requirement: Requirement{Present: []Feature{SupportsRemove}},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)

				assert.False(t, m.Remove(s.Absent()), "Remove(notPresent) should return false")
				assert.Equal(t, s.Size.Count(), m.Length())
			},
		},
		{
			Name:        "Clear",
			Requirement: Requirement{Present: []Feature{SupportsRemove}},
			Run: func(t *testing.T, s *Subject[T]) {
				m := s.Mutable(t)

				m.Clear()
				assert.True(t, m.IsEmpty())
				assert.Equal(t, 0, m.Length())

				for _, item := range s.Elements() {
					assert.False(t, m.Contains(item))
				}
			},
		},
	}
}
