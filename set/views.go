package set

import "iter"

type unionView[T comparable] struct {
	viewOps[T]
	set1       View[T]
	set2       View[T]
	set2minus1 View[T]
}

// Union returns an unmodifiable view of the union of two sets. The view
// contains every item in either set. It iterates over set1 first, then over
// the items of set2 that are not in set1.
//
// The view is cheaper to query when set1 is the smaller set.
func Union[T comparable](set1, set2 View[T]) SetView[T] {
	mustNotBeNil(set1, "set1")
	mustNotBeNil(set2, "set2")

	v := &unionView[T]{
		set1:       set1,
		set2:       set2,
		set2minus1: Difference(set2, set1),
	}
	v.self = v

	return v
}

// Contains determines whether the provided items are in either set.
func (v *unionView[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !v.set1.Contains(item) && !v.set2.Contains(item) {
			return false
		}
	}

	return true
}

// Length returns the number of distinct items in both sets.
func (v *unionView[T]) Length() int {
	return v.set1.Length() + v.set2minus1.Length()
}

// IsEmpty returns whether both sets are empty.
func (v *unionView[T]) IsEmpty() bool {
	return v.set1.IsEmpty() && v.set2.IsEmpty()
}

// All returns an iterator over set1 followed by the items of set2 not in set1.
func (v *unionView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range v.set1.All() {
			if !yield(item) {
				return
			}
		}

		for item := range v.set2minus1.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// CopyInto adds set1 and then set2 to dst, leaving duplicate elimination to
// dst.
func (v *unionView[T]) CopyInto(dst Interface[T]) error {
	if err := addAll(dst, v.set1); err != nil {
		return err
	}

	return addAll(dst, v.set2)
}

// filterView keeps the items of set1 whose membership in set2 equals keep.
type filterView[T comparable] struct {
	viewOps[T]
	set1 View[T]
	set2 View[T]
	keep bool
}

// Intersection returns an unmodifiable view of the intersection of two sets.
// The view contains every item that is in both sets and iterates in the order
// of set1.
func Intersection[T comparable](set1, set2 View[T]) SetView[T] {
	mustNotBeNil(set1, "set1")
	mustNotBeNil(set2, "set2")

	return newFilterView(set1, set2, true)
}

// Difference returns an unmodifiable view of the difference of two sets. The
// view contains every item of set1 that is not in set2; items of set2 that
// are not in set1 are ignored. It iterates in the order of set1.
func Difference[T comparable](set1, set2 View[T]) SetView[T] {
	mustNotBeNil(set1, "set1")
	mustNotBeNil(set2, "set2")

	return newFilterView(set1, set2, false)
}

// SymmetricDifference returns an unmodifiable view of the items that are in
// exactly one of the two sets.
func SymmetricDifference[T comparable](set1, set2 View[T]) SetView[T] {
	mustNotBeNil(set1, "set1")
	mustNotBeNil(set2, "set2")

	return Union[T](Difference(set1, set2), Difference(set2, set1))
}

func newFilterView[T comparable](set1, set2 View[T], keep bool) *filterView[T] {
	v := &filterView[T]{
		set1: set1,
		set2: set2,
		keep: keep,
	}
	v.self = v

	return v
}

// Contains determines whether the provided items are in the view.
func (v *filterView[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !v.set1.Contains(item) || v.set2.Contains(item) != v.keep {
			return false
		}
	}

	return true
}

// Length returns the number of items in the view.
func (v *filterView[T]) Length() int {
	return count(v.All())
}

// IsEmpty returns whether the view has no items.
func (v *filterView[T]) IsEmpty() bool {
	if !v.keep {
		// Nothing is left of set1 when set2 holds all of it.
		return ContainsAll(v.set2, v.set1.All())
	}

	for range v.All() {
		return false
	}

	return true
}

// All returns an iterator over the items of the view in the order of set1.
func (v *filterView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range v.set1.All() {
			if v.set2.Contains(item) != v.keep {
				continue
			}

			if !yield(item) {
				return
			}
		}
	}
}
