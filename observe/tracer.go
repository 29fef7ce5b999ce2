package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/readyprobe/probe"
)

const tracerName = "github.com/jonwraymond/readyprobe"

// Tracer wraps OpenTelemetry tracing with per-target probe spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer from the given provider.
func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(tracerName)}
}

// StartTarget starts a span covering one target's full retry sequence.
func (t *Tracer) StartTarget(ctx context.Context, target probe.Target) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	return t.tracer.Start(ctx, "probe.target."+target.Name,
		trace.WithAttributes(
			attribute.String("target.name", target.Name),
			attribute.String("target.address", target.Address),
			attribute.String("target.kind", target.Kind().String()),
			attribute.Bool("target.critical", target.Critical),
		),
	)
}

// AddAttempt records one attempt as a span event.
func (t *Tracer) AddAttempt(span trace.Span, attempt probe.Attempt) {
	if t == nil {
		return
	}

	span.AddEvent("probe.attempt",
		trace.WithAttributes(
			attribute.Int("attempt.number", attempt.Number),
			attribute.String("attempt.outcome", attempt.Outcome.Code.String()),
			attribute.Int64("attempt.elapsed_ms", attempt.Elapsed.Milliseconds()),
		),
	)
}

// EndTarget ends the span, recording the final verdict.
func (t *Tracer) EndTarget(span trace.Span, healthy bool, outcome string) {
	if t == nil {
		return
	}

	span.SetAttributes(attribute.Bool("target.healthy", healthy))
	if !healthy {
		span.SetStatus(codes.Error, outcome)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
