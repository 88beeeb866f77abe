package set

import "go.uber.org/zap/zapcore"

// viewOps implements the View methods that only need iteration. Types embed
// it and point self back at themselves.
type viewOps[T comparable] struct {
	self View[T]
}

func (o viewOps[T]) ForEach(fn func(T) bool) {
	forEach(o.self.All(), fn)
}

func (o viewOps[T]) ToSlice() []T {
	return collect(o.self.All())
}

func (o viewOps[T]) String() string {
	return format(o.self.All())
}

// ImmutableCopy returns an immutable copy of the current items. It panics if
// one of them is nil.
func (o viewOps[T]) ImmutableCopy() *Immutable[T] {
	return CopyOf(o.self.All())
}

func (o viewOps[T]) CopyInto(dst Interface[T]) error {
	return addAll(dst, o.self)
}

func (o viewOps[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	return marshalLogArray(o.self.All(), enc)
}

func addAll[T comparable](dst Interface[T], src View[T]) error {
	for item := range src.All() {
		if _, err := dst.Add(item); err != nil {
			return err
		}
	}

	return nil
}
