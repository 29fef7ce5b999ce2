// Package observe wires logging, metrics, and tracing for the prober.
//
// Logging is zerolog, constructed once per process and passed down; the
// probe primitives themselves stay log-free. Metrics and traces go through
// OpenTelemetry with pluggable exporters (stdout, otlp, prometheus, none);
// both default off so the CLI stays quiet unless asked.
//
//	obs, err := observe.New(ctx, observe.Config{
//	    ServiceName:     "readyprobe",
//	    MetricsExporter: "prometheus",
//	})
//	if err != nil {
//	    return err
//	}
//	defer obs.Shutdown(ctx)
//
//	obs.Metrics.RecordAttempt(ctx, attempt)
package observe
