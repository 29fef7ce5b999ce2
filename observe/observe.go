package observe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/readyprobe/observe/exporters"
)

// Config holds the telemetry configuration for one process run.
type Config struct {
	ServiceName string
	Version     string

	// MetricsExporter is one of stdout|otlp|prometheus|none.
	MetricsExporter string

	// TraceExporter is one of stdout|otlp|none.
	TraceExporter string
}

var validMetricsExporters = map[string]bool{
	"stdout":     true,
	"otlp":       true,
	"prometheus": true,
	"none":       true,
	"":           true,
}

var validTraceExporters = map[string]bool{
	"stdout": true,
	"otlp":   true,
	"none":   true,
	"":       true,
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return errors.New("observe: service name is required")
	}
	if !validMetricsExporters[c.MetricsExporter] {
		return fmt.Errorf("observe: unknown metrics exporter: %q", c.MetricsExporter)
	}
	if !validTraceExporters[c.TraceExporter] {
		return fmt.Errorf("observe: unknown trace exporter: %q", c.TraceExporter)
	}
	return nil
}

// Observer owns the telemetry providers for one process run.
type Observer struct {
	// Metrics records probe attempt metrics. Never nil; a disabled
	// exporter backs it with a noop meter.
	Metrics *Metrics

	// Tracer emits per-target probe spans. Never nil.
	Tracer *Tracer

	// MetricsHandler serves scrapeable metrics when the prometheus
	// exporter is selected, nil otherwise.
	MetricsHandler http.Handler

	shutdown []func(context.Context) error
}

// New builds an observer from the config.
func New(ctx context.Context, cfg Config) (*Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
	)

	obs := &Observer{}

	var meter metric.Meter
	switch cfg.MetricsExporter {
	case "none", "":
		meter = metricnoop.NewMeterProvider().Meter(tracerName)
	default:
		reader, err := exporters.NewMetricsReader(ctx, cfg.MetricsExporter)
		if err != nil {
			return nil, err
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		)
		obs.shutdown = append(obs.shutdown, mp.Shutdown)
		meter = mp.Meter(tracerName)

		if cfg.MetricsExporter == "prometheus" {
			obs.MetricsHandler = promhttp.Handler()
		}
	}

	metrics, err := NewMetrics(meter)
	if err != nil {
		return nil, err
	}
	obs.Metrics = metrics

	switch cfg.TraceExporter {
	case "none", "":
		obs.Tracer = NewTracer(tracenoop.NewTracerProvider())
	default:
		exp, err := exporters.NewTracingExporter(ctx, cfg.TraceExporter)
		if err != nil {
			return nil, err
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
		)
		obs.shutdown = append(obs.shutdown, tp.Shutdown)
		obs.Tracer = NewTracer(trace.TracerProvider(tp))
	}

	return obs, nil
}

// Shutdown flushes and stops the telemetry providers.
func (o *Observer) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range o.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
