package sequence

import (
	"context"

	"github.com/kbukum/seqkit/errors"
)

// CartesianProduct returns the cross product of sequences as a lazy sequence
// of tuples. Position i of every tuple is drawn from the i-th input sequence.
//
// Tuples come out in odometer order: the last dimension varies fastest and
// the first slowest, so [[A B] [1 2]] yields [A 1], [A 2], [B 1], [B 2].
// An empty dimension makes the whole product empty. With no dimensions the
// product is a single empty tuple.
//
// The outer sequence and every inner sequence are enumerated once, before
// CartesianProduct returns, so a nil dimension is reported at call time and
// single-pass dimensions can be revisited. Inner sequences must therefore be
// finite. Each returned tuple is a freshly allocated slice.
func CartesianProduct[T any](ctx context.Context, sequences *Sequence[*Sequence[T]]) (*Sequence[[]T], error) {
	if sequences == nil {
		return nil, errors.MissingArgument(paramSequences)
	}
	dims, err := captureDimensions(ctx, sequences)
	if err != nil {
		return nil, err
	}
	return &Sequence[[]T]{
		create: func(_ context.Context) Iterator[[]T] {
			return newProductIter(dims)
		},
	}, nil
}

// CartesianProductOf is CartesianProduct over a fixed list of dimensions.
func CartesianProductOf[T any](ctx context.Context, dims ...*Sequence[T]) (*Sequence[[]T], error) {
	return CartesianProduct(ctx, FromSlice(dims))
}

// captureDimensions validates and materializes every dimension in a single
// pass over the outer sequence.
func captureDimensions[T any](ctx context.Context, sequences *Sequence[*Sequence[T]]) ([][]T, error) {
	outer := sequences.open(ctx)
	defer outer.Close()

	var dims [][]T
	for index := 0; ; index++ {
		dim, ok, err := outer.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return dims, nil
		}
		if dim == nil {
			return nil, errors.InvalidArgument(paramSequences, "contains a nil sequence").
				WithDetail("index", index)
		}
		items, err := Collect(ctx, dim)
		if err != nil {
			return nil, err
		}
		dims = append(dims, items)
	}
}

// productIter walks the product as a multi-radix counter, one index per dimension.
type productIter[T any] struct {
	dims    [][]T
	indices []int
	started bool
	done    bool
}

func newProductIter[T any](dims [][]T) *productIter[T] {
	it := &productIter[T]{dims: dims, indices: make([]int, len(dims))}
	for _, dim := range dims {
		if len(dim) == 0 {
			it.done = true
			break
		}
	}
	return it
}

func (it *productIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if it.started && !it.advance() {
		it.done = true
		return nil, false, nil
	}
	it.started = true

	tuple := make([]T, len(it.dims))
	for d, i := range it.indices {
		tuple[d] = it.dims[d][i]
	}
	return tuple, true, nil
}

// advance increments the rightmost index, carrying leftwards on overflow.
// It reports false once the leftmost dimension overflows.
func (it *productIter[T]) advance() bool {
	for d := len(it.indices) - 1; d >= 0; d-- {
		it.indices[d]++
		if it.indices[d] < len(it.dims[d]) {
			return true
		}
		it.indices[d] = 0
	}
	return false
}

func (it *productIter[T]) Close() error {
	it.done = true
	return nil
}
