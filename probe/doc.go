// Package probe executes single readiness check attempts against named
// network targets and classifies the result.
//
// A Target describes one service endpoint: a bare host:port is checked by
// opening a TCP connection, an address with a URL scheme (or a health path)
// is checked by issuing an HTTP GET and comparing the status code.
//
// A probe is exactly one attempt. It never retries (see the retry package)
// and never leaks raw network errors: every failure mode is captured as an
// Outcome variant, so callers can tell a timeout from a refused connection
// from a service that answered with the wrong status.
//
// # Basic Usage
//
//	target := probe.Target{
//	    Name:       "api",
//	    Address:    "127.0.0.1:8080",
//	    HealthPath: "/health",
//	    Critical:   true,
//	    Timeout:    2 * time.Second,
//	}
//
//	outcome := probe.New().Probe(ctx, target)
//	if !outcome.OK() {
//	    log.Printf("api unhealthy: %s", outcome)
//	}
//
// # Custom Probers
//
// The Prober interface has a single method, so deterministic fakes are
// trivial to build with ProberFunc:
//
//	flaky := probe.ProberFunc(func(ctx context.Context, t probe.Target) probe.Outcome {
//	    return probe.Refused()
//	})
package probe
