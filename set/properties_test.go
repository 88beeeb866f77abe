package set

import (
	"fmt"
	"math/rand"
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/scylladb/go-set/strset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdeusser/sets/backing"
)

const propertyRounds = 200

// fuzzedPair returns two random sets drawn from a small alphabet, so they
// overlap often, together with strset copies used as an oracle.
func fuzzedPair(f *gofuzz.Fuzzer) (View[string], View[string], *strset.Set, *strset.Set) {
	var rawA, rawB []uint8

	f.Fuzz(&rawA)
	f.Fuzz(&rawB)

	a, oracleA := NewLinkedHashSet[string](), strset.New()
	b, oracleB := NewSet[string](), strset.New()

	for _, r := range rawA {
		item := fmt.Sprintf("e%d", r%24)
		_, _ = a.Add(item)
		oracleA.Add(item)
	}

	for _, r := range rawB {
		item := fmt.Sprintf("e%d", r%24)
		_, _ = b.Add(item)
		oracleB.Add(item)
	}

	return a, b, oracleA, oracleB
}

func newFuzzer(t *testing.T) *gofuzz.Fuzzer {
	seed := rand.Int63()
	t.Logf("seed: %d", seed)

	return gofuzz.New().RandSource(rand.NewSource(seed)).NilChance(0).NumElements(0, 20)
}

func TestUnionProperties(t *testing.T) {
	f := newFuzzer(t)

	for i := 0; i < propertyRounds; i++ {
		a, b, oracleA, oracleB := fuzzedPair(f)

		ab := Union(a, b)
		ba := Union(b, a)

		require.True(t, Equal[string](ab, ba), "union commutes: %s vs %s", ab, ba)
		assert.ElementsMatch(t, strset.Union(oracleA, oracleB).List(), ab.ToSlice())
		assert.Equal(t, len(ab.ToSlice()), ab.Length())
	}
}

func TestIntersectionProperties(t *testing.T) {
	f := newFuzzer(t)

	for i := 0; i < propertyRounds; i++ {
		a, b, oracleA, oracleB := fuzzedPair(f)

		v := Intersection(a, b)

		require.True(t, IsSubset[string](v, a), "%s not a subset of %s", v, a)
		require.True(t, IsSubset[string](v, b), "%s not a subset of %s", v, b)
		assert.ElementsMatch(t, strset.Intersection(oracleA, oracleB).List(), v.ToSlice())
	}
}

func TestDifferenceProperties(t *testing.T) {
	f := newFuzzer(t)

	for i := 0; i < propertyRounds; i++ {
		a, b, oracleA, oracleB := fuzzedPair(f)

		diff := Difference(a, b)
		recombined := Union[string](diff, Intersection(a, b))

		require.True(t, Equal(a, View[string](recombined)), "%s != %s", recombined, a)
		assert.ElementsMatch(t, strset.Difference(oracleA, oracleB).List(), diff.ToSlice())
		assert.Equal(t, diff.Length() == 0, diff.IsEmpty())
	}
}

func TestSymmetricDifferenceProperties(t *testing.T) {
	f := newFuzzer(t)

	for i := 0; i < propertyRounds; i++ {
		a, b, oracleA, oracleB := fuzzedPair(f)

		v := SymmetricDifference(a, b)
		assert.ElementsMatch(t, strset.SymmetricDifference(oracleA, oracleB).List(), v.ToSlice())
	}
}

func TestFilterProperties(t *testing.T) {
	f := newFuzzer(t)

	var suffix uint8

	for i := 0; i < propertyRounds; i++ {
		a, _, oracleA, _ := fuzzedPair(f)
		f.Fuzz(&suffix)

		want := fmt.Sprint(suffix % 10)
		p := func(item string) bool { return item[len(item)-1:] == want }

		filtered := Filter[string](FromSeq(a.All()), p)

		expected := strset.New()
		oracleA.Each(func(item string) bool {
			if p(item) {
				expected.Add(item)
			}
			return true
		})

		assert.ElementsMatch(t, expected.List(), filtered.ToSlice())

		for item := range a.All() {
			assert.Equal(t, p(item), filtered.Contains(item), item)
		}
	}
}

func TestMapBackedSetProperties(t *testing.T) {
	f := newFuzzer(t)

	for i := 0; i < propertyRounds; i++ {
		var raw []uint8
		f.Fuzz(&raw)

		m := backing.NewLinkedMap[uint8, struct{}]()
		s, err := NewSetFromMap[uint8](m)
		require.NoError(t, err)
		require.True(t, s.IsEmpty())

		for _, r := range raw {
			m.Put(r, struct{}{})
			require.True(t, s.Contains(r))
		}

		require.Equal(t, m.Len(), s.Length())

		for _, r := range raw {
			m.Delete(r)
			require.False(t, s.Contains(r))
		}

		require.True(t, s.IsEmpty())
	}
}
