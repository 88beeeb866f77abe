// Package settest checks set and map implementations against a common suite
// of behavioural tests. An implementation is described by a Generator that
// builds subjects from sample elements and lists the Features it has; each
// test declares the features and sizes it requires and is skipped otherwise.
package settest

import (
	"testing"

	"github.com/rdeusser/sets/backing"
	"github.com/rdeusser/sets/set"
)

// Generator describes a set implementation under test.
type Generator[T comparable] struct {
	// Name identifies the implementation in test names.
	Name string

	// Samples are five distinct, non-nil elements. Subjects are built from
	// the first Size.Count() of them; the remaining ones are absent from
	// every subject. Implementations with KnownOrder must iterate the samples
	// in this order.
	Samples [5]T

	// Create builds a subject holding exactly elements.
	Create func(elements ...T) set.View[T]

	// Features the implementation has.
	Features *set.EnumSet[Feature]
}

func (g Generator[T]) features() *set.EnumSet[Feature] {
	if g.Features == nil {
		return NewFeatureSet()
	}
	return g.Features
}

// Subject is the collection a single test runs against.
type Subject[T comparable] struct {
	Generator Generator[T]
	Size      Size

	view set.View[T]
}

func newSubject[T comparable](g Generator[T], size Size) *Subject[T] {
	s := &Subject[T]{Generator: g, Size: size}
	s.view = g.Create(s.Elements()...)
	return s
}

// View returns the collection under test.
func (s *Subject[T]) View() set.View[T] {
	return s.view
}

// Mutable returns the collection under test as a modifiable set, failing the
// test when it is not one.
func (s *Subject[T]) Mutable(t *testing.T) set.Interface[T] {
	t.Helper()

	m, ok := s.view.(set.Interface[T])
	if !ok {
		t.Fatalf("%s declares a mutating feature but %T is not a set.Interface", s.Generator.Name, s.view)
	}

	return m
}

// Recreate replaces the collection under test with one holding elements.
func (s *Subject[T]) Recreate(elements ...T) {
	s.view = s.Generator.Create(elements...)
}

// Elements returns the samples the subject was built with.
func (s *Subject[T]) Elements() []T {
	return s.Samples(s.Size.Count())
}

// Samples returns the first n samples.
func (s *Subject[T]) Samples(n int) []T {
	samples := make([]T, n)
	copy(samples, s.Generator.Samples[:n])
	return samples
}

// Absent returns a sample that no subject contains.
func (s *Subject[T]) Absent() T {
	return s.Generator.Samples[3]
}

// Nil returns the nil element of T and whether T has one.
func (s *Subject[T]) Nil() (T, bool) {
	var zero T
	return zero, backing.IsNil(zero)
}

// HashSet copies elements into a plain hash set to compare subjects with.
func HashSet[T comparable](elements ...T) *set.Set[T] {
	return set.NewSet(elements...)
}
