package settest

import (
	"fmt"
	"testing"

	"github.com/rdeusser/sets/set"
)

// Requirement is what a test needs from its subject.
type Requirement struct {
	Present     []Feature
	Absent      []Feature
	AbsentSizes []Size

	// NeedsNil skips the test for element types without a nil value.
	NeedsNil bool
}

// Check returns why a subject with the given features and size cannot run the
// test, or "" when it can.
func (r Requirement) Check(features set.View[Feature], size Size, hasNil bool) string {
	for _, f := range r.Present {
		if !features.Contains(f) {
			return fmt.Sprintf("requires %s", f)
		}
	}

	for _, f := range r.Absent {
		if features.Contains(f) {
			return fmt.Sprintf("requires %s to be absent", f)
		}
	}

	for _, s := range r.AbsentSizes {
		if s == size {
			return fmt.Sprintf("not applicable to size %s", size)
		}
	}

	if r.NeedsNil && !hasNil {
		return "element type has no nil value"
	}

	return ""
}

// Test is a single behavioural check.
type Test[T comparable] struct {
	Name        string
	Requirement Requirement
	Run         func(t *testing.T, s *Subject[T])
}
