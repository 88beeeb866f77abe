package set

import (
	"fmt"
	"iter"
	"strings"
)

// Equal determines if two sets hold the same items, whatever their
// implementation or iteration order.
func Equal[T comparable](a, b View[T]) bool {
	if a.Length() != b.Length() {
		return false
	}

	return ContainsAll(a, b.All())
}

// IsSubset determines if every item in a is in b.
func IsSubset[T comparable](a, b View[T]) bool {
	return ContainsAll(b, a.All())
}

// IsSuperset determines if every item in b is in a.
func IsSuperset[T comparable](a, b View[T]) bool {
	return ContainsAll(a, b.All())
}

// ContainsAll determines if every item of items is in s.
func ContainsAll[T comparable](s View[T], items iter.Seq[T]) bool {
	for item := range items {
		if !s.Contains(item) {
			return false
		}
	}

	return true
}

func forEach[T any](seq iter.Seq[T], fn func(T) bool) {
	for item := range seq {
		if fn(item) {
			break
		}
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	items := make([]T, 0)

	for item := range seq {
		items = append(items, item)
	}

	return items
}

func count[T any](seq iter.Seq[T]) int {
	n := 0

	for range seq {
		n++
	}

	return n
}

func format[T any](seq iter.Seq[T]) string {
	items := make([]string, 0)

	for item := range seq {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}
