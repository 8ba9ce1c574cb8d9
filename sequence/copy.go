package sequence

import "context"

// AsNew copies the elements of seq, in order, into a new sequence backed by
// its own slice. The result is never the same instance as seq and later
// changes to seq's backing data do not show through.
func AsNew[T any](ctx context.Context, seq *Sequence[T]) (*Sequence[T], error) {
	items, err := Collect(ctx, seq)
	if err != nil {
		return nil, err
	}
	return FromSlice(items), nil
}

// Single returns a sequence holding exactly v. A nil v is a valid element.
func Single[T any](v T) *Sequence[T] {
	return FromSlice([]T{v})
}
