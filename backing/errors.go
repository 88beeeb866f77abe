package backing

import "github.com/pkg/errors"

var (
	ErrNilKey        = errors.New("nil key not permitted")
	ErrNilComparator = errors.New("nil comparator")
)
