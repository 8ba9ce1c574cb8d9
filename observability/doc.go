// Package observability connects sequences to OpenTelemetry metrics,
// tracing and structured logging.
//
// Providers:
//
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("seqkit"))
//	defer tp.Shutdown(ctx)
//
// Wrapping a sequence:
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqkit"))
//	seq = observability.Instrument(seq, metrics, "product")
//	seq = observability.Traced(seq, observability.Tracer("seqkit"), "product")
//
// Wrappers are lazy like every other combinator: nothing is recorded until
// the returned sequence is enumerated, and each enumeration pass is recorded
// separately.
package observability
