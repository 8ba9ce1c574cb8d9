package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string `mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		logger.FieldService, config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Enumeration outcomes reported in the status attribute.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusAbandoned = "abandoned"
)

// Metrics holds the instruments recorded by sequence wrappers.
type Metrics struct {
	elements     metric.Int64Counter
	enumerations metric.Int64Counter
	duration     metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter("sequence.elements",
		metric.WithDescription("Elements pulled through instrumented sequences"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.elements counter: %w", err)
	}

	enumerations, err := meter.Int64Counter("sequence.enumerations",
		metric.WithDescription("Completed enumeration passes by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.enumerations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("sequence.enumeration.duration",
		metric.WithDescription("Duration of enumeration passes in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.enumeration.duration histogram: %w", err)
	}

	return &Metrics{
		elements:     elements,
		enumerations: enumerations,
		duration:     duration,
	}, nil
}

// RecordElements adds n pulled elements for the named sequence.
func (m *Metrics) RecordElements(ctx context.Context, name string, n int64) {
	m.elements.Add(ctx, n, metric.WithAttributes(attribute.String(AttrSequence, name)))
}

// RecordEnumeration records one finished enumeration pass.
func (m *Metrics) RecordEnumeration(ctx context.Context, name, status string, duration time.Duration) {
	m.enumerations.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, name),
		attribute.String(AttrStatus, status),
	))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrSequence, name),
	))
}
