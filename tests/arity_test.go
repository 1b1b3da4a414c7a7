package tests

import (
	"fmt"
	"testing"

	anoniter "github.com/nik-rev/anon-iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type I = anoniter.Iterator[int]

// Every variant of every arity, each holding a fresh iterator.

func wrap2(fresh func() I) []I {
	var w anoniter.Iter2[int, I, I]
	v1, v2 := w.Variant1(fresh()), w.Variant2(fresh())
	return []I{&v1, &v2}
}

func wrap3(fresh func() I) []I {
	var w anoniter.Iter3[int, I, I, I]
	v1, v2, v3 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh())
	return []I{&v1, &v2, &v3}
}

func wrap4(fresh func() I) []I {
	var w anoniter.Iter4[int, I, I, I, I]
	v1, v2, v3, v4 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh()), w.Variant4(fresh())
	return []I{&v1, &v2, &v3, &v4}
}

func wrap5(fresh func() I) []I {
	var w anoniter.Iter5[int, I, I, I, I, I]
	v1, v2, v3, v4, v5 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh()), w.Variant4(fresh()), w.Variant5(fresh())
	return []I{&v1, &v2, &v3, &v4, &v5}
}

func wrap6(fresh func() I) []I {
	var w anoniter.Iter6[int, I, I, I, I, I, I]
	v1, v2, v3 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh())
	v4, v5, v6 := w.Variant4(fresh()), w.Variant5(fresh()), w.Variant6(fresh())
	return []I{&v1, &v2, &v3, &v4, &v5, &v6}
}

func wrap7(fresh func() I) []I {
	var w anoniter.Iter7[int, I, I, I, I, I, I, I]
	v1, v2, v3 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh())
	v4, v5, v6, v7 := w.Variant4(fresh()), w.Variant5(fresh()), w.Variant6(fresh()), w.Variant7(fresh())
	return []I{&v1, &v2, &v3, &v4, &v5, &v6, &v7}
}

func wrap8(fresh func() I) []I {
	var w anoniter.Iter8[int, I, I, I, I, I, I, I, I]
	v1, v2, v3, v4 := w.Variant1(fresh()), w.Variant2(fresh()), w.Variant3(fresh()), w.Variant4(fresh())
	v5, v6, v7, v8 := w.Variant5(fresh()), w.Variant6(fresh()), w.Variant7(fresh()), w.Variant8(fresh())
	return []I{&v1, &v2, &v3, &v4, &v5, &v6, &v7, &v8}
}

var arities = map[int]func(func() I) []I{
	2: wrap2,
	3: wrap3,
	4: wrap4,
	5: wrap5,
	6: wrap6,
	7: wrap7,
	8: wrap8,
}

// variant reads the active variant without knowing the arity.
func variant(it I) int {
	return it.(interface{ Variant() int }).Variant()
}

func TestTransparency(t *testing.T) {
	const calls = 12

	for _, p := range Producers() {
		want := Trace(p.Fresh(), calls)

		for n := 2; n <= 8; n++ {
			for i, wrapped := range arities[n](p.Fresh) {
				t.Run(fmt.Sprintf("%s/Iter%d/Variant%d", p.Name, n, i+1), func(t *testing.T) {
					require.Equal(t, i+1, variant(wrapped))
					assert.Equal(t, want, Trace(wrapped, calls))
				})
			}
		}
	}
}

func TestStutteringIsNotFusedByWrapper(t *testing.T) {
	it := wrap3(func() I { return Stuttering(1, 2) })[1]

	var got []string
	for range 5 {
		v, ok := it.Next()
		got = append(got, fmt.Sprint(v, ok))
	}
	assert.Equal(t, []string{"1 true", "0 false", "2 true", "0 false", "0 false"}, got)
}

// An Iter8 that only ever holds its 3rd variant reads the same as an Iter2
// holding the same iterator, and as the bare iterator.
func TestArityDoesNotLeak(t *testing.T) {
	type wide = anoniter.Iter8[int,
		*anoniter.SliceIter[int], *anoniter.SliceIter[int], *anoniter.SliceIter[int], *anoniter.SliceIter[int],
		*anoniter.SliceIter[int], *anoniter.SliceIter[int], *anoniter.SliceIter[int], *anoniter.SliceIter[int],
	]
	type narrow = anoniter.Iter2[int, *anoniter.SliceIter[int], *anoniter.SliceIter[int]]
	values := []int{4, 8, 15, 16, 23, 42}

	w := wide{}.Variant3(anoniter.Slice(values))
	n := narrow{}.Variant2(anoniter.Slice(values))

	assert.Equal(t, Trace(anoniter.Slice(values), 8), Trace(&w, 8))

	w = wide{}.Variant3(anoniter.Slice(values))
	assert.Equal(t, Trace(&n, 8), Trace(&w, 8))

	w = wide{}.Variant3(anoniter.Slice(values))
	n = narrow{}.Variant2(anoniter.Slice(values))
	assert.Equal(t, anoniter.AsExactSize2(&n).Len(), anoniter.AsExactSize8(&w).Len())
	assert.Equal(t,
		anoniter.CollectBack[int](anoniter.AsDoubleEnded2(&n)),
		anoniter.CollectBack[int](anoniter.AsDoubleEnded8(&w)),
	)
}
