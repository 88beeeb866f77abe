package settest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdeusser/sets/backing"
	"github.com/rdeusser/sets/set"
)

// Entry is a key and the value stored for it.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// MapGenerator describes a backing.Map implementation under test. For maps,
// AllowsNilValues refers to values; keys are covered by the set tests of the
// map-backed set.
type MapGenerator[K comparable, V comparable] struct {
	Name string

	// Samples are five entries with distinct keys and distinct, non-nil
	// values.
	Samples [5]Entry[K, V]

	// Create builds a map holding exactly entries.
	Create func(entries ...Entry[K, V]) backing.Map[K, V]

	Features *set.EnumSet[Feature]
}

func (g MapGenerator[K, V]) features() *set.EnumSet[Feature] {
	if g.Features == nil {
		return NewFeatureSet()
	}
	return g.Features
}

// MapSubject is the map a single test runs against.
type MapSubject[K comparable, V comparable] struct {
	Generator MapGenerator[K, V]
	Size      Size

	m backing.Map[K, V]
}

func newMapSubject[K comparable, V comparable](g MapGenerator[K, V], size Size) *MapSubject[K, V] {
	s := &MapSubject[K, V]{Generator: g, Size: size}
	s.m = g.Create(s.Entries()...)
	return s
}

func (s *MapSubject[K, V]) Map() backing.Map[K, V] {
	return s.m
}

func (s *MapSubject[K, V]) Recreate(entries ...Entry[K, V]) {
	s.m = s.Generator.Create(entries...)
}

// Entries returns the samples the subject was built with.
func (s *MapSubject[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], s.Size.Count())
	copy(entries, s.Generator.Samples[:])
	return entries
}

// Absent returns a sample whose key and value no subject contains.
func (s *MapSubject[K, V]) Absent() Entry[K, V] {
	return s.Generator.Samples[3]
}

// NilValue returns the nil value of V and whether V has one.
func (s *MapSubject[K, V]) NilValue() (V, bool) {
	var zero V
	return zero, backing.IsNil(zero)
}

// MapTest is a single behavioural check of a map.
type MapTest[K comparable, V comparable] struct {
	Name        string
	Requirement Requirement
	Run         func(t *testing.T, s *MapSubject[K, V])
}

// ContainsValueTests checks backing.ContainsValue.
func ContainsValueTests[K comparable, V comparable]() []MapTest[K, V] {
	return []MapTest[K, V]{
		{
			Name:        "ContainsValueYes",
			Requirement: Requirement{AbsentSizes: []Size{Zero}},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				assert.True(t, backing.ContainsValue(s.Map(), s.Generator.Samples[0].Value),
					"ContainsValue(present) should return true")
			},
		},
		{
			Name: "ContainsValueNo",
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				assert.False(t, backing.ContainsValue(s.Map(), s.Absent().Value),
					"ContainsValue(notPresent) should return false")
			},
		},
		{
			Name:        "ContainsValueNilNotContained",
			Requirement: Requirement{NeedsNil: true},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				nilValue, _ := s.NilValue()
				assert.False(t, backing.ContainsValue(s.Map(), nilValue),
					"ContainsValue(nil) should return false")
			},
		},
		{
			Name: "ContainsValueNonNilWhenNilContained",
			Requirement: Requirement{
				Present:     []Feature{AllowsNilValues},
				AbsentSizes: []Size{Zero},
				NeedsNil:    true,
			},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				s.Recreate(withNilValue(s)...)

				assert.False(t, backing.ContainsValue(s.Map(), s.Absent().Value),
					"ContainsValue(notPresent) should return false")
			},
		},
		{
			Name: "ContainsValueNilContained",
			Requirement: Requirement{
				Present:     []Feature{AllowsNilValues},
				AbsentSizes: []Size{Zero},
				NeedsNil:    true,
			},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				nilValue, _ := s.NilValue()
				s.Recreate(withNilValue(s)...)

				assert.True(t, backing.ContainsValue(s.Map(), nilValue),
					"ContainsValue(nil) should return true")
			},
		},
	}
}

// withNilValue returns the subject's entries with the last value replaced by
// nil.
func withNilValue[K comparable, V comparable](s *MapSubject[K, V]) []Entry[K, V] {
	entries := s.Entries()
	entries[len(entries)-1].Value, _ = s.NilValue()
	return entries
}

// MapAccessTests checks Get, Put, Delete, Len and Clear.
func MapAccessTests[K comparable, V comparable]() []MapTest[K, V] {
	return []MapTest[K, V]{
		{
			Name: "GetPresent",
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				for _, e := range s.Entries() {
					v, ok := s.Map().Get(e.Key)
					assert.True(t, ok, "Get(%v)", e.Key)
					assert.Equal(t, e.Value, v)
				}
			},
		},
		{
			Name: "GetNotPresent",
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				v, ok := s.Map().Get(s.Absent().Key)
				assert.False(t, ok)
				assert.Zero(t, v)
			},
		},
		{
			Name: "AllVisitsEveryEntry",
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				var seen []Entry[K, V]
				for k, v := range s.Map().All() {
					seen = append(seen, Entry[K, V]{Key: k, Value: v})
				}

				assert.ElementsMatch(t, s.Entries(), seen)
				assert.Equal(t, s.Size.Count(), s.Map().Len())
			},
		},
		{
			Name:        "PutNew",
			Requirement: Requirement{Present: []Feature{SupportsAdd}},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				absent := s.Absent()

				_, replaced := s.Map().Put(absent.Key, absent.Value)
				assert.False(t, replaced)
				assert.Equal(t, s.Size.Count()+1, s.Map().Len())

				v, ok := s.Map().Get(absent.Key)
				require.True(t, ok)
				assert.Equal(t, absent.Value, v)
			},
		},
		{
			Name: "PutReplaces",
			Requirement: Requirement{
				Present:     []Feature{SupportsAdd},
				AbsentSizes: []Size{Zero},
			},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				first := s.Generator.Samples[0]

				prev, replaced := s.Map().Put(first.Key, s.Absent().Value)
				assert.True(t, replaced)
				assert.Equal(t, first.Value, prev)
				assert.Equal(t, s.Size.Count(), s.Map().Len())
			},
		},
		{
			Name: "DeletePresent",
			Requirement: Requirement{
				Present:     []Feature{SupportsRemove},
				AbsentSizes: []Size{Zero},
			},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				first := s.Generator.Samples[0]

				prev, ok := s.Map().Delete(first.Key)
				assert.True(t, ok)
				assert.Equal(t, first.Value, prev)
				assert.Equal(t, s.Size.Count()-1, s.Map().Len())
			},
		},
		{
			Name:        "DeleteNotPresent",
			Requirement: Requirement{Present: []Feature{SupportsRemove}},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				_, ok := s.Map().Delete(s.Absent().Key)
				assert.False(t, ok)
				assert.Equal(t, s.Size.Count(), s.Map().Len())
			},
		},
		{
			Name:        "Clear",
			Requirement: Requirement{Present: []Feature{SupportsRemove}},
			Run: func(t *testing.T, s *MapSubject[K, V]) {
				s.Map().Clear()
				assert.Equal(t, 0, s.Map().Len())

				for range s.Map().All() {
					t.Fatal("All should yield nothing after Clear")
				}
			},
		},
	}
}

// RunMapTests runs every map test against g.
func RunMapTests[K comparable, V comparable](t *testing.T, g MapGenerator[K, V], opts ...Option) Report {
	t.Helper()

	tests := append(ContainsValueTests[K, V](), MapAccessTests[K, V]()...)

	checks := make([]check, 0, len(tests))
	for _, test := range tests {
		checks = append(checks, check{
			name:        test.Name,
			requirement: test.Requirement,
			run: func(t *testing.T, size Size) {
				test.Run(t, newMapSubject(g, size))
			},
		})
	}

	_, hasNil := (&MapSubject[K, V]{}).NilValue()

	return runChecks(t, g.Name, g.features(), hasNil, checks, opts)
}
