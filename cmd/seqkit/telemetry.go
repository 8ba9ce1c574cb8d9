package main

import (
	"context"
	"time"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/version"
)

const shutdownTimeout = 5 * time.Second

// initTelemetry starts OTLP metric and trace export when an endpoint is
// configured. The returned function flushes and stops both providers.
func initTelemetry(ctx context.Context, cfg *Config) (func(), error) {
	if cfg.Telemetry.Endpoint == "" {
		return func() {}, nil
	}

	meterCfg := observability.DefaultMeterConfig(cfg.Name)
	meterCfg.ServiceVersion = version.Short()
	meterCfg.Environment = cfg.Environment
	meterCfg.Endpoint = cfg.Telemetry.Endpoint
	meterCfg.Insecure = cfg.Telemetry.Insecure

	mp, err := observability.InitMeter(ctx, &meterCfg)
	if err != nil {
		return nil, err
	}

	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.ServiceVersion = meterCfg.ServiceVersion
	tracerCfg.Environment = cfg.Environment
	tracerCfg.Endpoint = cfg.Telemetry.Endpoint
	tracerCfg.Insecure = cfg.Telemetry.Insecure
	tracerCfg.SampleRate = cfg.Telemetry.SampleRate

	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", logger.ErrorFields("telemetry", err))
		}
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("meter shutdown failed", logger.ErrorFields("telemetry", err))
		}
	}, nil
}
