package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOf(t *testing.T) {
	testCases := []struct {
		testName string
		items    []string
		want     []string
	}{
		{"no items", nil, []string{}},
		{"one item", []string{"a"}, []string{"a"}},
		{"repeated item", []string{"a", "a"}, []string{"a"}},
		{"several items", []string{"c", "a", "b", "a"}, []string{"c", "a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			s := Of(tc.items...)
			assert.Equal(t, tc.want, s.ToSlice())
			assert.Equal(t, len(tc.want), s.Length())
			assert.Equal(t, len(tc.want) == 0, s.IsEmpty())
		})
	}
}

func TestCopyOfIteratesOnce(t *testing.T) {
	calls := 0
	seq := func(yield func(string) bool) {
		calls++
		for _, item := range []string{"a", "b", "a"} {
			if !yield(item) {
				return
			}
		}
	}

	s := CopyOf(seq)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a", "b"}, s.ToSlice())
}

func TestCopyOfView(t *testing.T) {
	s := Of("a", "b")
	assert.Same(t, s, CopyOfView[string](s))
	assert.Same(t, s, s.ImmutableCopy())

	copied := CopyOfView[string](NewLinkedHashSet("x", "y"))
	assert.Equal(t, []string{"x", "y"}, copied.ToSlice())
}

func TestImmutableString(t *testing.T) {
	assert.Equal(t, "Set{a, b, c, d, e, f, g}", Of("a", "b", "c", "d", "e", "f", "g").String())
}

func TestImmutableContains(t *testing.T) {
	s := Of("a", "b", "c")

	assert.False(t, s.Contains("a", "b", "c", "d"))
	assert.False(t, s.Contains("a", "d"))
	assert.True(t, s.Contains("a", "c"))
	assert.True(t, s.Contains("a", "b", "c"))
}

func TestMarshalLogArray(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("members",
		zap.Array("linked", NewLinkedHashSet("a", "b")),
		zap.Array("union", Marshaler[int](Union[int](NewTreeSet(1), NewTreeSet(2)))),
		zap.Array("hash", NewSet("only")),
	)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, []interface{}{"a", "b"}, fields["linked"])
		assert.Equal(t, []interface{}{1, 2}, fields["union"])
		assert.Equal(t, []interface{}{"only"}, fields["hash"])
	}
}

func TestImmutableRejectsNil(t *testing.T) {
	const msg = "immutable set: nil item: element not permitted"

	one := 1

	testCases := []struct {
		testName string
		build    func() *Immutable[*int]
	}{
		{"only nil", func() *Immutable[*int] { return Of[*int](nil) }},
		{"items containing nil", func() *Immutable[*int] { return Of(&one, nil) }},
		{"copy of a set containing nil", func() *Immutable[*int] { return CopyOfView[*int](NewSet(&one, nil)) }},
		{"copy of a sequence containing nil", func() *Immutable[*int] {
			return CopyOf(func(yield func(*int) bool) {
				_ = yield(&one) && yield(nil)
			})
		}},
		{"immutable copy of a view containing nil", func() *Immutable[*int] {
			return Union[*int](NewSet(&one), NewSet[*int](nil)).ImmutableCopy()
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.PanicsWithError(t, msg, func() { tc.build() })
		})
	}
}

func TestImmutablePointers(t *testing.T) {
	one, two := 1, 2

	s := Of(&one, &two, &one)
	assert.Equal(t, 2, s.Length())
	assert.True(t, s.Contains(&one, &two))
	assert.False(t, s.Contains(nil))
}
