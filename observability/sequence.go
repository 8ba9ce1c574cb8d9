package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/sequence"
)

const (
	paramSeq     = "seq"
	paramMetrics = "metrics"
	paramTracer  = "tracer"
	paramLog     = "log"
)

// Counted adds one to the sequence.elements counter for every element
// pulled through the result.
func Counted[T any](seq *sequence.Sequence[T], m *Metrics, name string) (*sequence.Sequence[T], error) {
	if seq == nil {
		return nil, errors.MissingArgument(paramSeq)
	}
	if m == nil {
		return nil, errors.MissingArgument(paramMetrics)
	}
	return sequence.Tap(seq, func(ctx context.Context, _ T) error {
		m.RecordElements(ctx, name, 1)
		return nil
	}), nil
}

// Logged writes every element pulled through the result to log at debug
// level.
func Logged[T any](seq *sequence.Sequence[T], log *logger.Logger, msg string) (*sequence.Sequence[T], error) {
	if log == nil {
		return nil, errors.MissingArgument(paramLog)
	}
	return sequence.Do(seq, func(v T) {
		log.Debug(msg, logger.Fields(logger.FieldElement, v))
	})
}

// Instrument records each enumeration pass of seq when its iterator is
// closed: the element count, the pass duration and its outcome (ok, error
// or abandoned).
func Instrument[T any](seq *sequence.Sequence[T], m *Metrics, name string) (*sequence.Sequence[T], error) {
	if seq == nil {
		return nil, errors.MissingArgument(paramSeq)
	}
	if m == nil {
		return nil, errors.MissingArgument(paramMetrics)
	}
	return sequence.FromFunc(func(ctx context.Context) sequence.Iterator[T] {
		return &instrumentedIter[T]{
			source:  seq.Iter(ctx),
			ctx:     context.WithoutCancel(ctx),
			metrics: m,
			name:    name,
			start:   time.Now(),
			status:  StatusAbandoned,
		}
	}), nil
}

// Traced opens one span per enumeration pass of seq. The span covers the
// pass from the first pull until Close and carries the element count.
// Upstream iterators see the span in their context.
func Traced[T any](seq *sequence.Sequence[T], tracer trace.Tracer, name string) (*sequence.Sequence[T], error) {
	if seq == nil {
		return nil, errors.MissingArgument(paramSeq)
	}
	if tracer == nil {
		return nil, errors.MissingArgument(paramTracer)
	}
	return sequence.FromFunc(func(ctx context.Context) sequence.Iterator[T] {
		spanCtx, span := tracer.Start(ctx, name,
			trace.WithAttributes(attribute.String(AttrSequence, name)),
		)
		return &tracedIter[T]{source: seq.Iter(spanCtx), span: span}
	}), nil
}

type instrumentedIter[T any] struct {
	source  sequence.Iterator[T]
	ctx     context.Context
	metrics *Metrics
	name    string
	start   time.Time
	count   int64
	status  string
	closed  bool
}

func (it *instrumentedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		it.status = StatusError
	case !ok:
		it.status = StatusOK
	default:
		it.count++
	}
	return val, ok, err
}

func (it *instrumentedIter[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	err := it.source.Close()
	if it.count > 0 {
		it.metrics.RecordElements(it.ctx, it.name, it.count)
	}
	it.metrics.RecordEnumeration(it.ctx, it.name, it.status, time.Since(it.start))
	return err
}

type tracedIter[T any] struct {
	source sequence.Iterator[T]
	span   trace.Span
	count  int64
	done   bool
	ended  bool
}

func (it *tracedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(trace.ContextWithSpan(ctx, it.span))
	switch {
	case err != nil:
		it.done = true
		it.span.RecordError(err)
		it.span.SetStatus(codes.Error, err.Error())
	case !ok:
		it.done = true
	default:
		it.count++
	}
	return val, ok, err
}

func (it *tracedIter[T]) Close() error {
	if it.ended {
		return nil
	}
	it.ended = true
	err := it.source.Close()
	it.span.SetAttributes(attribute.Int64(AttrElements, it.count))
	if !it.done {
		it.span.SetAttributes(attribute.String(AttrStatus, StatusAbandoned))
	}
	it.span.End()
	return err
}
