package set

import (
	"iter"

	"go.uber.org/zap/zapcore"
)

// Every set can be passed to zap.Array.
var (
	_ zapcore.ArrayMarshaler = (*Set[string])(nil)
	_ zapcore.ArrayMarshaler = (*MapSet[string])(nil)
	_ zapcore.ArrayMarshaler = (*FilteredSet[string])(nil)
	_ zapcore.ArrayMarshaler = (*EnumSet[int])(nil)
	_ zapcore.ArrayMarshaler = (*Immutable[string])(nil)
)

func marshalLogArray[T any](seq iter.Seq[T], enc zapcore.ArrayEncoder) error {
	for item := range seq {
		if err := enc.AppendReflected(item); err != nil {
			return err
		}
	}

	return nil
}

// Marshaler adapts any View for zap.Array, including views implemented
// outside this package.
func Marshaler[T comparable](v View[T]) zapcore.ArrayMarshaler {
	return zapcore.ArrayMarshalerFunc(func(enc zapcore.ArrayEncoder) error {
		return marshalLogArray(v.All(), enc)
	})
}
