// Package retry repeats a probe against a single target up to a bounded
// number of attempts with a fixed delay in between.
//
// The policy is a plain value object consumed by a Runner, independent of
// any particular prober, so it can be unit tested with a fake that fails N
// times and then succeeds.
//
//	runner, err := retry.New(retry.Policy{MaxAttempts: 3, Delay: 5 * time.Second})
//	if err != nil {
//	    return err
//	}
//
//	result := runner.Run(ctx, target, probe.New())
//	for _, attempt := range result.Attempts {
//	    fmt.Printf("attempt %d: %s\n", attempt.Number, attempt.Outcome)
//	}
//
// Attempts for one target are strictly sequential: attempt N's delay begins
// only after attempt N-1 completes. Cancellation mid-run returns the partial
// attempt history with Cancelled set rather than exhausting the budget.
package retry
