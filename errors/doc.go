// Package errors provides the error taxonomy shared by seqkit packages.
//
// Combinators reject contract violations (a nil sequence, a nil callback, a
// nil dimension inside a cartesian product) with an *AppError carrying a
// machine-readable code and the name of the offending parameter. Errors
// raised by caller-supplied callbacks or iterators are never wrapped.
//
//	out, err := sequence.Do(seq, action)
//	if errors.IsCode(err, errors.ErrCodeMissingArgument) {
//	    log.Printf("missing %s", errors.ParamOf(err))
//	}
package errors
