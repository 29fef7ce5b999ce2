package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/readyprobe/probe"
)

// Policy configures bounded retry for a single target.
type Policy struct {
	// MaxAttempts is the total attempt budget, including the first attempt.
	// Must be at least 1; there is no default, a non-positive value is a
	// configuration error.
	MaxAttempts int

	// Delay is the fixed pause between attempts. Must not be negative.
	// Zero is valid (test mode).
	Delay time.Duration

	// OnAttempt, when set, is called after every completed attempt.
	OnAttempt func(attempt probe.Attempt)
}

// Validate checks the policy invariants.
func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidPolicy, p.MaxAttempts)
	}
	if p.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrInvalidPolicy, p.Delay)
	}
	return nil
}

// Result is the outcome of running a policy against one target.
type Result struct {
	// Attempts is the ordered attempt history, oldest first.
	Attempts []probe.Attempt

	// Final is the last attempt made. Zero when cancelled before the
	// first attempt.
	Final probe.Attempt

	// Cancelled is true when the context ended before the target either
	// succeeded or exhausted its budget.
	Cancelled bool
}

// Healthy reports whether the target ended in success.
func (r Result) Healthy() bool {
	return !r.Cancelled && len(r.Attempts) > 0 && r.Final.Outcome.OK()
}

// Runner executes a policy.
type Runner struct {
	policy Policy
}

// New creates a runner, failing fast on an invalid policy rather than
// silently applying a default budget.
func New(policy Policy) (*Runner, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Runner{policy: policy}, nil
}

// Policy returns the runner's policy.
func (r *Runner) Policy() Policy {
	return r.policy
}

// Run probes the target sequentially until success or budget exhaustion.
// The delay between attempts honors ctx: cancellation mid-delay (or before
// an attempt starts) returns the partial history with Cancelled set.
// An in-flight attempt is never interrupted beyond its own timeout.
func (r *Runner) Run(ctx context.Context, target probe.Target, prober probe.Prober) Result {
	var res Result

	for n := 1; n <= r.policy.MaxAttempts; n++ {
		if ctx.Err() != nil {
			res.Cancelled = true
			return res
		}

		start := time.Now()
		outcome := prober.Probe(ctx, target)
		attempt := probe.Attempt{
			Target:    target,
			Number:    n,
			Outcome:   outcome,
			Elapsed:   time.Since(start),
			StartedAt: start,
		}
		res.Attempts = append(res.Attempts, attempt)
		res.Final = attempt

		if r.policy.OnAttempt != nil {
			r.policy.OnAttempt(attempt)
		}

		if outcome.OK() {
			return res
		}

		// The attempt may have failed because the run was cancelled
		// underneath it; report that as cancellation, not exhaustion.
		if ctx.Err() != nil {
			res.Cancelled = true
			return res
		}

		if n == r.policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			res.Cancelled = true
			return res
		case <-time.After(r.policy.Delay):
		}
	}

	return res
}
