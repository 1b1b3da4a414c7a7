// Package anoniter lets a function return one of several differently typed
// iterators behind a single declared return type.
//
// Go requires every return statement of a function to produce the declared
// result type. When the branches of a function naturally build different
// iterators (a range, a slice traversal, a filtered view), the result type
// can be one of the IterN sum types, with each branch wrapping its iterator
// in the matching variant:
//
//	type digits = anoniter.Iter2[int, *anoniter.RangeIter[int], *anoniter.SliceIter[int]]
//
//	func Digits(odd bool) digits {
//		if odd {
//			return digits{}.Variant2(anoniter.Slice([]int{1, 3, 5, 7, 9}))
//		}
//		return digits{}.Variant1(anoniter.Range(0, 10))
//	}
//
// The wrapper forwards every call to the variant it holds and adds nothing
// of its own. Optional capabilities (NextBack, Len, Fused, Err) are offered
// through views such as AsDoubleEnded2, which only compile when every
// variant type supports the capability. Views hold a single capability each,
// except AsDoubleEndedExactSize2 and its siblings, which offer NextBack and
// Len together.
package anoniter

//go:generate go run ./cmd/anongen --min 2 --max 8

// Iterator is a lazy sequence of T.
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter is implemented by iterators that can bound how many elements
// remain. lower is a lower bound; upper is only meaningful when bounded is
// true.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// DoubleEndedIterator can also be advanced from the back.
type DoubleEndedIterator[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// ExactSizeIterator knows exactly how many elements remain.
type ExactSizeIterator[T any] interface {
	Iterator[T]
	Len() int
}

// DoubleEndedExactSizeIterator is both a DoubleEndedIterator and an
// ExactSizeIterator.
type DoubleEndedExactSizeIterator[T any] interface {
	DoubleEndedIterator[T]
	ExactSizeIterator[T]
}

// FusedIterator marks iterators that keep returning false from Next once
// they have returned it a first time.
type FusedIterator[T any] interface {
	Iterator[T]
	Fused()
}

// FallibleIterator can fail mid-sequence. After Next returns false, Err
// reports whether the sequence ended because of an error.
type FallibleIterator[T any] interface {
	Iterator[T]
	Err() error
}

// SizeHint returns the size estimate of it. Iterators that do not implement
// SizeHinter report at least zero remaining elements and no upper bound.
func SizeHint[T any](it Iterator[T]) (lower, upper int, bounded bool) {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, 0, false
}
