package sequence

import (
	"context"

	"github.com/kbukum/seqkit/errors"
)

// Do returns a sequence that calls action on each element as it is pulled
// and yields the element unchanged. Nothing is read from seq and action is
// not called until the result is enumerated; every enumeration pass calls
// action again, once per element, in input order.
func Do[T any](seq *Sequence[T], action func(T)) (*Sequence[T], error) {
	if seq == nil {
		return nil, errors.MissingArgument(paramSeq)
	}
	if action == nil {
		return nil, errors.MissingArgument(paramAction)
	}
	return Tap(seq, func(_ context.Context, v T) error {
		action(v)
		return nil
	}), nil
}

// ForEach enumerates seq to completion, calling action once per element in
// order. Iterator and context errors are returned unchanged.
func ForEach[T any](ctx context.Context, seq *Sequence[T], action func(T)) error {
	if seq == nil {
		return errors.MissingArgument(paramSeq)
	}
	if action == nil {
		return errors.MissingArgument(paramAction)
	}
	it := seq.open(ctx)
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		action(val)
	}
}

// Drain enumerates seq to completion without doing anything with the
// elements. Use it to force upstream side effects, e.g. those attached with
// Do. It opens exactly one iterator and calls Next once per element plus the
// final call that reports exhaustion.
func Drain[T any](ctx context.Context, seq *Sequence[T]) error {
	if seq == nil {
		return errors.MissingArgument(paramSeq)
	}
	it := seq.open(ctx)
	defer it.Close()
	for {
		_, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return err
		}
	}
}
