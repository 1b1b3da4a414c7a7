package anoniter

import "iter"

func Collect[T any](it Iterator[T]) (slice []T) {
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		slice = append(slice, value)
	}
	return
}

// CollectBack drains it from the back.
func CollectBack[T any](it DoubleEndedIterator[T]) (slice []T) {
	for value, ok := it.NextBack(); ok; value, ok = it.NextBack() {
		slice = append(slice, value)
	}
	return
}

// TryCollect drains it and returns its error, if any, along with everything
// produced before the failure.
func TryCollect[T any](it FallibleIterator[T]) ([]T, error) {
	slice := Collect[T](it)
	return slice, it.Err()
}

func Count[T any](it Iterator[T]) (n int) {
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return
}

// All ranges over the remaining elements of it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, ok := it.Next(); ok; value, ok = it.Next() {
			if !yield(value) {
				return
			}
		}
	}
}

// RevIter swaps the ends of a double-ended iterator.
type RevIter[T any, I DoubleEndedIterator[T]] struct {
	inner I
}

func Rev[T any, I DoubleEndedIterator[T]](inner I) *RevIter[T, I] {
	return &RevIter[T, I]{inner: inner}
}

func (r *RevIter[T, I]) Next() (T, bool) {
	return r.inner.NextBack()
}

func (r *RevIter[T, I]) NextBack() (T, bool) {
	return r.inner.Next()
}

func (r *RevIter[T, I]) SizeHint() (int, int, bool) {
	return SizeHint[T](r.inner)
}
