package set

import (
	"github.com/pkg/errors"

	"github.com/rdeusser/sets/backing"
)

var (
	ErrNilArgument  = errors.New("nil argument")
	ErrNotEmpty     = errors.New("map is non-empty")
	ErrNotPermitted = errors.New("element not permitted")
	ErrNegativeSize = errors.New("negative expected size")
)

// mustNotBeNil panics when a required argument is nil.
func mustNotBeNil(v any, name string) {
	if backing.IsNil(v) {
		panic(errors.Wrap(ErrNilArgument, name))
	}
}
