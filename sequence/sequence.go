package sequence

import (
	"context"
	"iter"

	"github.com/kbukum/seqkit/errors"
)

// Parameter names reported by argument errors.
const (
	paramSeq       = "seq"
	paramAction    = "action"
	paramSequences = "sequences"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator. It is safe to call
	// on a partially consumed iterator.
	Close() error
}

// Sequence is a lazy, restartable sequence of values.
// The zero value is an empty sequence.
type Sequence[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a fully-configured sequence consumer ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run enumerates the sequence until completion, error or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// open starts a new enumeration pass.
func (s *Sequence[T]) open(ctx context.Context) Iterator[T] {
	if s == nil {
		return &errIter[T]{err: errors.MissingArgument(paramSeq)}
	}
	if s.create == nil {
		return &sliceIter[T]{}
	}
	return s.create(ctx)
}

// --- Constructors ---

// From creates a sequence from an existing Iterator.
// The result is single-pass: every enumeration shares the same iterator.
func From[T any](it Iterator[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return it
		},
	}
}

// FromSlice creates a replayable sequence over items. The slice is not copied.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces a fresh Iterator
// for every enumeration pass.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Sequence[T] {
	return &Sequence[T]{create: fn}
}

// FromSeq adapts a range-over-func sequence. Each enumeration pass
// restarts seq; closing the iterator early stops it.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull(seq)
			return &pullIter[T]{next: next, stop: stop}
		},
	}
}

// Generate creates an infinite sequence whose i-th element is fn(i).
// Bound it with Take before using an eager terminal.
func Generate[T any](fn func(i int) T) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn}
		},
	}
}

// Empty returns a sequence with no elements.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// --- Terminals ---

// Sink creates a Runnable that pulls all values and sends each to fn.
func Sink[T any](s *Sequence[T], fn func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			it := s.open(ctx)
			defer it.Close()
			for {
				val, ok, err := it.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := fn(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect enumerates s and returns all values as a newly allocated slice.
func Collect[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	if s == nil {
		return nil, errors.MissingArgument(paramSeq)
	}
	it := s.open(ctx)
	defer it.Close()
	result := make([]T, 0)
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Count enumerates s and returns the number of elements.
func Count[T any](ctx context.Context, s *Sequence[T]) (int, error) {
	if s == nil {
		return 0, errors.MissingArgument(paramSeq)
	}
	it := s.open(ctx)
	defer it.Close()
	n := 0
	for {
		_, ok, err := it.Next(ctx)
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// Iter returns the raw Iterator for a new enumeration pass. The caller must Close() it.
func (s *Sequence[T]) Iter(ctx context.Context) Iterator[T] {
	return s.open(ctx)
}

// All returns a range-over-func view of one enumeration pass.
// An error ends the loop after being yielded once; breaking out of the
// loop closes the underlying iterator.
//
//	for v, err := range seq.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
func (s *Sequence[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.open(ctx)
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(val, nil) {
				return
			}
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, ok := it.next()
	return val, ok, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

type generateIter[T any] struct {
	fn    func(int) T
	index int
}

func (it *generateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val := it.fn(it.index)
	it.index++
	return val, true, nil
}

func (it *generateIter[T]) Close() error { return nil }

// errIter fails on the first Next.
type errIter[T any] struct {
	err error
}

func (it *errIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, it.err
}

func (it *errIter[T]) Close() error { return nil }
