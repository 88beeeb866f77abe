package settest

//go:generate go run ../tools/gen-enum -type Feature

// Feature is a capability a collection implementation may have. Testers
// declare the features they need and are skipped for subjects without them.
type Feature int

const (
	// Add succeeds for elements the subject does not contain.
	SupportsAdd Feature = iota

	// Remove and Clear are supported.
	SupportsRemove

	// The nil element may be stored. Only meaningful for element types that
	// have a nil value.
	AllowsNilValues

	// Iteration follows the order elements were handed to Create.
	KnownOrder
)

// Size is the number of sample elements a subject is built with.
type Size int

const (
	Zero Size = iota
	One
	Several
)

// Sizes lists every Size.
func Sizes() []Size {
	return []Size{Zero, One, Several}
}

// Count returns the number of elements a subject of this size holds.
func (s Size) Count() int {
	switch s {
	case Zero:
		return 0
	case One:
		return 1
	default:
		return 3
	}
}

func (s Size) String() string {
	switch s {
	case Zero:
		return "zero"
	case One:
		return "one"
	default:
		return "several"
	}
}
