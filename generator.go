package anoniter

// Generator is the Next/Value/Error iteration protocol.
//
//	for gen.Next() {
//		use(gen.Value())
//	}
//	if err := gen.Error(); err != nil {
//		...
//	}
type Generator[T any] interface {
	Next() bool
	Value() T
	Error() error
}

// GeneratorFunction implements Generator on top of a single Advance function.
type GeneratorFunction[T any] struct {
	Advance func() (hasValue bool, value T, err error)
	value   T
	err     error
}

func (g *GeneratorFunction[T]) Next() bool {
	hasValue, value, err := g.Advance()
	g.value = value
	g.err = err
	return hasValue
}

func (g *GeneratorFunction[T]) Value() T {
	return g.value
}

func (g *GeneratorFunction[T]) Error() error {
	return g.err
}

// GeneratorIter adapts a Generator to Iterator and FallibleIterator.
type GeneratorIter[T any] struct {
	gen Generator[T]
}

func FromGenerator[T any](gen Generator[T]) *GeneratorIter[T] {
	return &GeneratorIter[T]{gen: gen}
}

func (g *GeneratorIter[T]) Next() (T, bool) {
	if !g.gen.Next() {
		return *new(T), false
	}
	return g.gen.Value(), true
}

func (g *GeneratorIter[T]) Err() error {
	return g.gen.Error()
}

// ToGenerator exposes an Iterator through the Generator protocol.
// Error reports the iterator's own error when it is a FallibleIterator.
func ToGenerator[T any](it Iterator[T]) Generator[T] {
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		value, ok := it.Next()
		if ok {
			return true, value, nil
		}
		if f, isFallible := it.(FallibleIterator[T]); isFallible {
			return false, value, f.Err()
		}
		return false, value, nil
	}}
}
