// Package sequence provides lazy, pull-based sequence combinators.
//
// A Sequence is restartable: every enumeration pass asks it for a fresh
// Iterator, so upstream side effects run again on every pass and nothing is
// cached. No work happens until values are pulled via ForEach, Drain,
// Collect, All or a Runnable.
//
// # Combinators
//
//   - Do: attach a side effect that runs as each element is pulled
//   - ForEach: enumerate eagerly, calling an action per element
//   - Drain: enumerate eagerly with no action, forcing upstream laziness
//   - AsNew: copy the elements into a fresh, independent sequence
//   - Single: wrap one value as a sequence
//   - CartesianProduct: enumerate the cross product of N sequences in
//     odometer order (last dimension varies fastest)
//
// Map, FlatMap, Filter, Tap, Take, Reduce and Concat compose pipelines the
// usual way. Everything runs on the caller's goroutine.
//
// # Usage
//
//	letters := sequence.FromSlice([]string{"A", "B"})
//	digits := sequence.FromSlice([]string{"1", "2"})
//	product, err := sequence.CartesianProductOf(ctx, letters, digits)
//	if err != nil {
//	    return err
//	}
//	for tuple, err := range product.All(ctx) {
//	    ...
//	}
//
// Contract violations (nil sequences, nil callbacks) are reported at call
// time as *errors.AppError values naming the offending parameter.
package sequence
