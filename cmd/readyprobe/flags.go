package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/jonwraymond/readyprobe/prober"
	"github.com/jonwraymond/readyprobe/registry"
	"github.com/jonwraymond/readyprobe/retry"
)

// Defaults mirror the most common values seen in the scripts this tool
// replaces.
const (
	defaultRetries = 3
	defaultDelay   = 5 * time.Second
)

// runFlags are the probe-shaping flags shared by check, watch, and serve.
type runFlags struct {
	retries     int
	delay       time.Duration
	concurrency int
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.retries, "retries", defaultRetries, "attempt budget per target, including the first attempt")
	fs.DurationVar(&f.delay, "delay", defaultDelay, "fixed delay between attempts")
	fs.IntVar(&f.concurrency, "concurrency", 0, "max targets probed at once (0 = all)")
}

// resolve merges registry-file defaults under flags: an explicitly set flag
// always wins, otherwise a positive file default applies.
func (f runFlags) resolve(fs *pflag.FlagSet, d registry.Defaults) (retry.Policy, int) {
	retries := f.retries
	if !fs.Changed("retries") && d.Retries > 0 {
		retries = d.Retries
	}

	delay := f.delay
	if !fs.Changed("delay") && d.Delay > 0 {
		delay = d.Delay
	}

	concurrency := f.concurrency
	if !fs.Changed("concurrency") && d.Concurrency > 0 {
		concurrency = d.Concurrency
	}

	return retry.Policy{MaxAttempts: retries, Delay: delay}, concurrency
}

// newBatch loads the registry file and builds a batch prober from it.
// Any failure here is a configuration error: nothing has been probed yet.
func newBatch(fs *pflag.FlagSet, f runFlags, path string) (*prober.Batch, error) {
	reg, defaults, err := registry.Load(path)
	if err != nil {
		return nil, configError(err)
	}

	policy, concurrency := f.resolve(fs, defaults)
	batch, err := prober.New(reg, prober.Config{
		Policy:      policy,
		Concurrency: concurrency,
		Logger:      &log,
		Metrics:     obs.Metrics,
		Tracer:      obs.Tracer,
	})
	if err != nil {
		return nil, configError(err)
	}
	return batch, nil
}
