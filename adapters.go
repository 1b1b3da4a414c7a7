package anoniter

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// SliceIter walks a slice from both ends.
type SliceIter[T any] struct {
	slice      []T
	front, end int
}

func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{slice: slice, end: len(slice)}
}

func (s *SliceIter[T]) Next() (T, bool) {
	if s.front >= s.end {
		return *new(T), false
	}
	s.front++
	return s.slice[s.front-1], true
}

func (s *SliceIter[T]) NextBack() (T, bool) {
	if s.front >= s.end {
		return *new(T), false
	}
	s.end--
	return s.slice[s.end], true
}

func (s *SliceIter[T]) Len() int {
	return s.end - s.front
}

func (s *SliceIter[T]) SizeHint() (int, int, bool) {
	return s.Len(), s.Len(), true
}

func (s *SliceIter[T]) Fused() {}

// RangeIter yields the integers in [start, end).
type RangeIter[T constraints.Integer] struct {
	start, end T
}

func Range[T constraints.Integer](start, end T) *RangeIter[T] {
	if end < start {
		end = start
	}
	return &RangeIter[T]{start: start, end: end}
}

func (r *RangeIter[T]) Next() (T, bool) {
	if r.start >= r.end {
		return 0, false
	}
	r.start++
	return r.start - 1, true
}

func (r *RangeIter[T]) NextBack() (T, bool) {
	if r.start >= r.end {
		return 0, false
	}
	r.end--
	return r.end, true
}

// width is end - start without overflowing T. Both bounds are sign extended
// to 64 bits, so the difference is exact modulo 2^64 and never exceeds it.
func (r *RangeIter[T]) width() uint64 {
	if r.start >= r.end {
		return 0
	}
	return uint64(r.end) - uint64(r.start)
}

// Len saturates at math.MaxInt for ranges wider than an int can count.
func (r *RangeIter[T]) Len() int {
	return int(min(r.width(), math.MaxInt))
}

func (r *RangeIter[T]) SizeHint() (int, int, bool) {
	if r.width() > math.MaxInt {
		return math.MaxInt, 0, false
	}
	return r.Len(), r.Len(), true
}

func (r *RangeIter[T]) Fused() {}

type Pair[First, Second any] struct {
	First  First
	Second Second
}

func NewPair[First, Second any](first First, second Second) Pair[First, Second] {
	return Pair[First, Second]{First: first, Second: second}
}

// Entries iterates over the entries of a map in ascending key order.
func Entries[K cmp.Ordered, V any](m map[K]V) *SliceIter[Pair[K, V]] {
	return EntriesFunc(m, cmp.Compare[K])
}

// EntriesFunc iterates over the entries of a map, ordered by compare.
func EntriesFunc[K comparable, V any](m map[K]V, compare func(a, b K) int) *SliceIter[Pair[K, V]] {
	keys := slices.SortedFunc(maps.Keys(m), compare)
	items := make([]Pair[K, V], 0, len(keys))
	for _, key := range keys {
		items = append(items, NewPair(key, m[key]))
	}
	return Slice(items)
}

// FilterIter yields the elements of an inner iterator that keep accepts.
type FilterIter[T any, I Iterator[T]] struct {
	inner I
	keep  func(T) bool
}

func Filter[T any, I Iterator[T]](inner I, keep func(T) bool) *FilterIter[T, I] {
	return &FilterIter[T, I]{inner: inner, keep: keep}
}

func (f *FilterIter[T, I]) Next() (T, bool) {
	for {
		value, ok := f.inner.Next()
		if !ok || f.keep(value) {
			return value, ok
		}
	}
}

func (f *FilterIter[T, I]) SizeHint() (int, int, bool) {
	_, upper, bounded := SizeHint[T](f.inner)
	return 0, upper, bounded
}

// MapIter applies fn to every element of an inner iterator.
type MapIter[T, U any, I Iterator[T]] struct {
	inner I
	fn    func(T) U
}

func Map[T, U any, I Iterator[T]](inner I, fn func(T) U) *MapIter[T, U, I] {
	return &MapIter[T, U, I]{inner: inner, fn: fn}
}

func (m *MapIter[T, U, I]) Next() (U, bool) {
	value, ok := m.inner.Next()
	if !ok {
		return *new(U), false
	}
	return m.fn(value), true
}

func (m *MapIter[T, U, I]) SizeHint() (int, int, bool) {
	return SizeHint[T](m.inner)
}

// FuncIter calls a function for every element.
type FuncIter[T any] struct {
	next func() (T, bool)
}

func FromFunc[T any](next func() (T, bool)) *FuncIter[T] {
	return &FuncIter[T]{next: next}
}

func (f *FuncIter[T]) Next() (T, bool) {
	return f.next()
}

// PullIter pulls elements out of a push-style iter.Seq.
// Call Stop when abandoning the iterator before it is exhausted.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func FromSeq[T any](seq iter.Seq[T]) *PullIter[T] {
	next, stop := iter.Pull(seq)
	return &PullIter[T]{next: next, stop: stop}
}

func (p *PullIter[T]) Next() (T, bool) {
	if p.done {
		return *new(T), false
	}
	value, ok := p.next()
	if !ok {
		p.Stop()
	}
	return value, ok
}

func (p *PullIter[T]) Stop() {
	p.done = true
	p.stop()
}

func (p *PullIter[T]) Fused() {}
