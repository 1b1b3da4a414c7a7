package anoniter

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		name string
		want []int
	}{
		{"nil", nil},
		{"single", []int{1}},
		{"multiple", []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect[int](Slice(tt.want)))

			back := CollectBack[int](Slice(tt.want))
			slices.Reverse(back)
			assert.Equal(t, tt.want, back)
		})
	}
}

func TestSliceBothEnds(t *testing.T) {
	it := Slice([]string{"a", "b", "c", "d"})
	require.Equal(t, 4, it.Len())

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = it.NextBack()
	assert.True(t, ok)
	assert.Equal(t, "d", v)

	lower, upper, bounded := it.SizeHint()
	assert.Equal(t, 2, lower)
	assert.Equal(t, 2, upper)
	assert.True(t, bounded)

	assert.Equal(t, []string{"b", "c"}, Collect[string](it))
	_, ok = it.NextBack()
	assert.False(t, ok, "the ends have met")
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"empty", 3, 3, nil},
		{"inverted", 5, 1, nil},
		{"one to three", 1, 4, []int{1, 2, 3}},
		{"negative", -2, 1, []int{-2, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, len(tt.want), Range(tt.start, tt.end).Len())
			assert.Equal(t, tt.want, Collect[int](Range(tt.start, tt.end)))
		})
	}
}

func TestRangeBack(t *testing.T) {
	assert.Equal(t, []uint8{4, 3, 2}, CollectBack[uint8](Range[uint8](2, 5)))
	assert.Equal(t, []int8{126, 125}, CollectBack[int8](Range[int8](125, math.MaxInt8)))
}

// rangeSize reports what Len and SizeHint claim for [start, end).
func rangeSize[T constraints.Integer](start, end T) [4]any {
	lower, upper, bounded := Range(start, end).SizeHint()
	return [4]any{Range(start, end).Len(), lower, upper, bounded}
}

func TestRangeNearTypeLimits(t *testing.T) {
	tests := []struct {
		name  string
		got   [4]any
		count int
	}{
		{"int8 across zero", rangeSize[int8](-100, 100), Count[int8](Range[int8](-100, 100))},
		{"int8 full", rangeSize[int8](math.MinInt8, math.MaxInt8), Count[int8](Range[int8](math.MinInt8, math.MaxInt8))},
		{"uint8 full", rangeSize[uint8](0, math.MaxUint8), Count[uint8](Range[uint8](0, math.MaxUint8))},
		{"int16 across zero", rangeSize[int16](-30000, 30000), Count[int16](Range[int16](-30000, 30000))},
		{"uint16 near top", rangeSize[uint16](math.MaxUint16-3, math.MaxUint16), Count[uint16](Range[uint16](math.MaxUint16-3, math.MaxUint16))},
		{"int64 near bottom", rangeSize[int64](math.MinInt64, math.MinInt64+2), Count[int64](Range[int64](math.MinInt64, math.MinInt64+2))},
		{"inverted uint8", rangeSize[uint8](200, 10), Count[uint8](Range[uint8](200, 10))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, [4]any{tt.count, tt.count, tt.count, true}, tt.got)
		})
	}
}

func TestRangeWiderThanInt(t *testing.T) {
	tests := []struct {
		name string
		got  [4]any
	}{
		{"int64 full", rangeSize[int64](math.MinInt64, math.MaxInt64)},
		{"int64 from minus one", rangeSize[int64](-1, math.MaxInt64)},
		{"uint64 full", rangeSize[uint64](0, math.MaxUint64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, [4]any{math.MaxInt, math.MaxInt, 0, false}, tt.got)
		})
	}
}

func TestRangeLenThroughWrapper(t *testing.T) {
	type narrow = Iter2[int8, *RangeIter[int8], *SliceIter[int8]]
	it := narrow{}.Variant1(Range[int8](-100, 100))
	view := AsExactSize2(&it)
	assert.Equal(t, 200, view.Len())

	_, _ = it.Next()
	_, _ = AsDoubleEnded2(&it).NextBack()
	assert.Equal(t, 198, view.Len())
	assert.Equal(t, 198, Count[int8](&it))
}

func TestEntries(t *testing.T) {
	tests := []struct {
		name string
		in   map[int]string
		want []Pair[int, string]
	}{
		{"empty", map[int]string{}, nil},
		{"single", map[int]string{1: "a"}, []Pair[int, string]{{1, "a"}}},
		{"multiple", map[int]string{2: "b", 1: "a", 3: "c"}, []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect[Pair[int, string]](Entries(tt.in)))
		})
	}
}

func TestEntriesFunc(t *testing.T) {
	type key struct{ name string }
	m := map[key]int{{"b"}: 2, {"a"}: 1}
	got := Collect[Pair[key, int]](EntriesFunc(m, func(a, b key) int {
		return strings.Compare(a.name, b.name)
	}))
	assert.Equal(t, []Pair[key, int]{{key{"a"}, 1}, {key{"b"}, 2}}, got)
}

func TestFilter(t *testing.T) {
	evens := Filter[int](Range(0, 10), func(n int) bool { return n%2 == 0 })

	lower, upper, bounded := evens.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 10, upper)
	assert.True(t, bounded)

	assert.Equal(t, []int{0, 2, 4, 6, 8}, Collect[int](evens))
}

func TestMap(t *testing.T) {
	squares := Map[int](Slice([]int{1, 2, 3}), func(n int) int { return n * n })

	lower, _, _ := squares.SizeHint()
	assert.Equal(t, 3, lower)
	assert.Equal(t, []int{1, 4, 9}, Collect[int](squares))
}

func TestFromFunc(t *testing.T) {
	n := 0
	countdown := FromFunc(func() (int, bool) {
		if n == 3 {
			return 0, false
		}
		n++
		return 3 - n, true
	})

	lower, _, bounded := SizeHint[int](countdown)
	assert.Equal(t, 0, lower)
	assert.False(t, bounded)
	assert.Equal(t, []int{2, 1, 0}, Collect[int](countdown))
}

func TestFromSeq(t *testing.T) {
	t.Run("drained", func(t *testing.T) {
		it := FromSeq(slices.Values([]string{"x", "y"}))
		assert.Equal(t, []string{"x", "y"}, Collect[string](it))
		_, ok := it.Next()
		assert.False(t, ok)
	})

	t.Run("stopped early", func(t *testing.T) {
		it := FromSeq(slices.Values([]string{"x", "y"}))
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, "x", v)

		it.Stop()
		_, ok = it.Next()
		assert.False(t, ok)
	})
}
