package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/readyprobe/probe"
)

// Metrics records probe attempt metrics.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: recording must not panic; a noop meter is a valid backend.
type Metrics struct {
	attempts metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	attempts, err := meter.Int64Counter(
		"probe.attempts.total",
		metric.WithDescription("Total number of probe attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"probe.failures.total",
		metric.WithDescription("Total number of failed probe attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"probe.attempt.duration_ms",
		metric.WithDescription("Probe attempt duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		attempts: attempts,
		failures: failures,
		duration: duration,
	}, nil
}

// RecordAttempt records one completed probe attempt.
func (m *Metrics) RecordAttempt(ctx context.Context, attempt probe.Attempt) {
	if m == nil {
		return
	}

	opt := metric.WithAttributes(
		attribute.String("target", attempt.Target.Name),
		attribute.String("outcome", attempt.Outcome.Code.String()),
		attribute.Bool("critical", attempt.Target.Critical),
	)

	m.attempts.Add(ctx, 1, opt)
	if !attempt.Outcome.OK() {
		m.failures.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(attempt.Elapsed)/float64(time.Millisecond), opt)
}
