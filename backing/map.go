// Package backing provides the maps a set can be built on. Every map here
// satisfies Map, so set.NewSetFromMap turns any of them into a set with the
// same ordering, concurrency and key admission rules as the map.
package backing

import (
	"iter"
	"reflect"
)

// Map is the subset of map behaviour a map-backed set relies on.
type Map[K comparable, V any] interface {
	// Returns the value stored for the key.
	Get(K) (V, bool)

	// Stores a value for the key and returns the previous value, if any.
	Put(K, V) (V, bool)

	// Deletes the key and returns the value it held, if any.
	Delete(K) (V, bool)

	// Returns the number of keys in the map.
	Len() int

	// Removes every key from the map.
	Clear()

	// Iterates over the entries of the map in the map's own order.
	All() iter.Seq2[K, V]
}

// KeyChecker is implemented by maps that do not accept every key. Put on such
// a map panics when CheckKey would have returned an error.
type KeyChecker[K comparable] interface {
	CheckKey(K) error
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// ContainsValue reports whether any key in m maps to v.
func ContainsValue[K comparable, V comparable](m Map[K, V], v V) bool {
	for _, value := range m.All() {
		if value == v {
			return true
		}
	}

	return false
}

// IsNil reports whether v is a nil pointer, interface, map, slice, channel or
// func.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
