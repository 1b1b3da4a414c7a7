// Package tests checks that every IterN behaves exactly like the iterator it
// holds, whatever the arity and whichever variant is active.
package tests

import (
	"slices"

	anoniter "github.com/nik-rev/anon-iter"
)

// Stuttering returns false after every element but keeps producing values
// when called again, until values runs out. It is deliberately not fused.
func Stuttering(values ...int) *anoniter.FuncIter[int] {
	i, paused := 0, false
	return anoniter.FromFunc(func() (int, bool) {
		if paused || i == len(values) {
			paused = false
			return 0, false
		}
		paused = true
		i++
		return values[i-1], true
	})
}

// Producer builds a fresh iterator on every call, so that the same sequence
// can be read directly and through a wrapper.
type Producer struct {
	Name  string
	Fresh func() anoniter.Iterator[int]
}

func Producers() []Producer {
	return []Producer{
		{"range", func() anoniter.Iterator[int] { return anoniter.Range(1, 4) }},
		{"empty range", func() anoniter.Iterator[int] { return anoniter.Range(0, 0) }},
		{"slice", func() anoniter.Iterator[int] { return anoniter.Slice([]int{5, 10}) }},
		{"filter", func() anoniter.Iterator[int] {
			return anoniter.Filter[int](anoniter.Range(0, 20), func(n int) bool { return n%3 == 0 })
		}},
		{"map", func() anoniter.Iterator[int] {
			return anoniter.Map[int](anoniter.Slice([]int{1, 2, 3}), func(n int) int { return -n })
		}},
		{"pull", func() anoniter.Iterator[int] { return anoniter.FromSeq(slices.Values([]int{8, 9})) }},
		{"stuttering", func() anoniter.Iterator[int] { return Stuttering(1, 2, 3) }},
	}
}

// Step is what a single Next call observed.
type Step struct {
	Value   int
	Ok      bool
	Lower   int
	Upper   int
	Bounded bool
}

// Trace calls Next n times, recording the size hint before every call.
func Trace(it anoniter.Iterator[int], n int) []Step {
	steps := make([]Step, 0, n)
	for range n {
		var s Step
		s.Lower, s.Upper, s.Bounded = anoniter.SizeHint[int](it)
		s.Value, s.Ok = it.Next()
		steps = append(steps, s)
	}
	return steps
}
