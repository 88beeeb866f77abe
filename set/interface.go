package set

import "iter"

// View is a read-only set. Every set in this package is a View, including
// the lazy views returned by Union, Intersection and Difference.
type View[T comparable] interface {
	// Returns whether the provided items are in the set.
	Contains(...T) bool

	// Returns the number of items in the set.
	Length() int

	// Returns whether the set has no items.
	IsEmpty() bool

	// Returns an iterator over the items in the set.
	All() iter.Seq[T]

	// Iterates over items and executes the provided function against each
	// item. Iteration stops when the function returns true.
	ForEach(func(T) bool)

	// Returns the set as a slice.
	ToSlice() []T

	// Provides a string representation of the set.
	String() string
}

// Interface is a set that can be modified.
type Interface[T comparable] interface {
	View[T]

	// Adds an item to the set. An error is returned when the set does not
	// permit the item.
	Add(T) (bool, error)

	// Removes an item from the set.
	Remove(T) bool

	// Removes all items from the set.
	Clear() bool
}

// SetView is an unmodifiable view of one or two backing sets. It changes as
// the backing sets do.
type SetView[T comparable] interface {
	View[T]

	// Returns an immutable copy of the current contents of the view. Panics
	// if the view holds nil.
	ImmutableCopy() *Immutable[T]

	// Adds the current contents of the view to the provided set. The first
	// item the set refuses stops the copy and its error is returned.
	CopyInto(Interface[T]) error
}

// Predicate reports whether an item belongs in a filtered set.
type Predicate[T comparable] func(T) bool
