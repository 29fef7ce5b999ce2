// Package prober runs the retry policy across an entire target registry and
// assembles one readiness report per run.
//
// Targets are probed independently with a bounded worker pool; no target
// waits on another's result, and shuffling registry order never changes
// per-target outcomes. Workers send immutable results over a channel to a
// single collector, so no shared map is touched concurrently.
//
//	batch, err := prober.New(reg, prober.Config{
//	    Policy: retry.Policy{MaxAttempts: 3, Delay: 5 * time.Second},
//	})
//	if err != nil {
//	    return err
//	}
//
//	rep := batch.Run(ctx)
//	if !rep.Ready() {
//	    os.Exit(1)
//	}
//
// Cancellation stops new attempts, lets in-flight attempts finish, and marks
// unresolved targets cancelled rather than healthy.
//
// For long-lived use a Watcher re-probes on an interval and retains the
// latest report, which the HTTP handlers in this package expose.
package prober
