package probe

import "context"

// Prober executes exactly one check attempt against a target and classifies
// the result.
//
// Contract:
// - Never retries; bounded repetition belongs to the retry package.
// - Never returns a raw network error; every failure is an Outcome variant.
// - Honors ctx cancellation and the target's own timeout.
type Prober interface {
	Probe(ctx context.Context, target Target) Outcome
}

// ProberFunc is an adapter to allow ordinary functions to be used as Probers.
type ProberFunc func(ctx context.Context, target Target) Outcome

// Probe executes the probe.
func (f ProberFunc) Probe(ctx context.Context, target Target) Outcome {
	return f(ctx, target)
}

// kindProber dispatches on the target kind.
type kindProber struct {
	tcp  *TCPProber
	http *HTTPProber
}

// New returns the default prober: TCP connect checks for host:port targets,
// HTTP GET checks for URL targets.
func New() Prober {
	return kindProber{
		tcp:  NewTCPProber(),
		http: NewHTTPProber(nil),
	}
}

func (p kindProber) Probe(ctx context.Context, target Target) Outcome {
	if target.Kind() == KindHTTP {
		return p.http.Probe(ctx, target)
	}
	return p.tcp.Probe(ctx, target)
}
