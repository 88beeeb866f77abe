package settest

import (
	"iter"
	"sync/atomic"
)

// MinimalSeq returns a sequence over items that may be ranged over only once.
// A second range panics, which catches code that walks its input twice.
func MinimalSeq[T any](items ...T) iter.Seq[T] {
	var used atomic.Bool

	return func(yield func(T) bool) {
		if !used.CompareAndSwap(false, true) {
			panic("settest: MinimalSeq ranged over more than once")
		}

		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
