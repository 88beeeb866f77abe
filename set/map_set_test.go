package set

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rdeusser/sets/backing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewSetFromMap(t *testing.T) {
	m := backing.NewHashMap[string, struct{}]()

	s, err := NewSetFromMap[string](m)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	added, err := s.Add("foo")
	require.NoError(t, err)
	assert.True(t, added)

	_, ok := m.Get("foo")
	assert.True(t, ok, "set writes through to the map")

	m.Put("bar", struct{}{})
	assert.True(t, s.Contains("bar"), "set reflects writes to the map")
	assert.Equal(t, 2, s.Length())

	m.Delete("foo")
	assert.False(t, s.Contains("foo"))

	assert.True(t, s.Remove("bar"))
	assert.Equal(t, 0, m.Len())
}

func TestNewSetFromMapRejectsNonEmptyMap(t *testing.T) {
	m := backing.NewHashMap[string, struct{}]()
	m.Put("foo", struct{}{})

	_, err := NewSetFromMap[string](m)
	assert.ErrorIs(t, err, ErrNotEmpty)
	assert.EqualError(t, err, "map has 1 entries: map is non-empty")
}

func TestNewSetFromMapRejectsNilMap(t *testing.T) {
	_, err := NewSetFromMap[string](nil)
	assert.ErrorIs(t, err, ErrNilArgument)

	_, err = NewSetFromMap[string]((*backing.HashMap[string, struct{}])(nil))
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestLinkedHashSetOrder(t *testing.T) {
	s := NewLinkedHashSet("c", "a", "b", "a")
	assert.Equal(t, []string{"c", "a", "b"}, s.ToSlice())

	s.Remove("c")
	_, err := s.Add("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.ToSlice())

	s = NewLinkedHashSetFromSeq(NewLinkedHashSet("z", "y").All())
	assert.Equal(t, []string{"z", "y"}, s.ToSlice())
}

func TestTreeSetOrder(t *testing.T) {
	s := NewTreeSet(5, 3, 9, 1, 3)
	assert.Equal(t, []int{1, 3, 5, 9}, s.ToSlice())

	s = NewTreeSetFromSeq(NewLinkedHashSet(2, 1).All())
	assert.Equal(t, []int{1, 2}, s.ToSlice())
}

func TestTreeSetFunc(t *testing.T) {
	s, err := NewTreeSetFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, "b", "A", "a", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "b", "C"}, s.ToSlice())
	assert.True(t, s.Contains("B"), "membership follows the comparator")

	_, err = NewTreeSetFunc[string](nil)
	assert.ErrorIs(t, err, backing.ErrNilComparator)
}

func TestTreeSetFuncRejectsNil(t *testing.T) {
	type node struct{ id int }

	s, err := NewTreeSetFunc(func(a, b *node) int { return a.id - b.id })
	require.NoError(t, err)

	added, err := s.Add(nil)
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.False(t, added)
	assert.False(t, s.Contains(nil))

	_, err = NewTreeSetFunc(func(a, b *node) int { return a.id - b.id }, &node{1}, nil)
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestConcurrentHashSet(t *testing.T) {
	s := NewConcurrentHashSet[int]()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(offset int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				_, err := s.Add(offset*100 + j)
				assert.NoError(t, err)
				s.Contains(j)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 800, s.Length())
}

func TestConcurrentHashSetRejectsNil(t *testing.T) {
	s := NewConcurrentHashSet[*int]()

	_, err := s.Add(nil)
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.True(t, s.IsEmpty())

	one := 1
	_, err = NewConcurrentHashSetFromSeq(Of(&one, nil).All())
	assert.ErrorIs(t, err, ErrNotPermitted)

	c, err := NewConcurrentHashSetFromSeq(Of(&one).All())
	require.NoError(t, err)
	assert.True(t, c.Contains(&one))
}

func TestMapSetClear(t *testing.T) {
	s := NewLinkedHashSet(1, 2, 3)
	assert.True(t, s.Clear())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "Set{}", s.String())
}

func TestMapSetRemoveWhileIterating(t *testing.T) {
	testCases := []struct {
		name string
		s    *MapSet[int]
		want []int
	}{
		{name: "linked", s: NewLinkedHashSet(1, 2, 3, 4), want: []int{1, 3, 4}},
		{name: "tree", s: NewTreeSet(1, 2, 3, 4), want: []int{1, 3, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen []int
			for item := range tc.s.All() {
				seen = append(seen, item)
				if item == 1 {
					tc.s.Remove(2)
				}
			}

			assert.Equal(t, tc.want, seen)
			assert.Equal(t, tc.want, tc.s.ToSlice())
		})
	}
}

func TestUnionOverLinkedSetRemoveWhileIterating(t *testing.T) {
	a := NewLinkedHashSet(1, 2, 3)
	b := NewLinkedHashSet(3, 4)

	var seen []int
	for item := range Union[int](a, b).All() {
		seen = append(seen, item)
		if item == 1 {
			a.Remove(2)
		}
	}

	assert.Equal(t, []int{1, 3, 4}, seen)
}
