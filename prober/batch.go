package prober

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/readyprobe/observe"
	"github.com/jonwraymond/readyprobe/probe"
	"github.com/jonwraymond/readyprobe/registry"
	"github.com/jonwraymond/readyprobe/report"
	"github.com/jonwraymond/readyprobe/retry"
)

// Config configures a batch run.
type Config struct {
	// Policy is the per-target retry policy. Required.
	Policy retry.Policy

	// Concurrency caps in-flight target probes.
	// Default: number of targets.
	Concurrency int

	// Prober overrides the default kind-dispatching prober.
	// Deterministic fakes go here in tests.
	Prober probe.Prober

	// Logger receives per-attempt debug and per-target info events.
	// Default: a disabled logger.
	Logger *zerolog.Logger

	// Metrics and Tracer are optional; nil disables them.
	Metrics *observe.Metrics
	Tracer  *observe.Tracer
}

// Batch probes every target in a registry with bounded fan-out.
type Batch struct {
	reg         *registry.Registry
	runner      *retry.Runner
	prober      probe.Prober
	concurrency int
	log         zerolog.Logger
	metrics     *observe.Metrics
	tracer      *observe.Tracer
}

// New creates a batch prober. An invalid policy is a configuration error.
func New(reg *registry.Registry, cfg Config) (*Batch, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, registry.ErrEmptyRegistry
	}

	runner, err := retry.New(cfg.Policy)
	if err != nil {
		return nil, err
	}

	p := cfg.Prober
	if p == nil {
		p = probe.New()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = reg.Len()
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Batch{
		reg:         reg,
		runner:      runner,
		prober:      p,
		concurrency: concurrency,
		log:         log,
		metrics:     cfg.Metrics,
		tracer:      cfg.Tracer,
	}, nil
}

// Run probes all targets and assembles one report. Results flow over a
// channel to a single collector goroutine; workers share no mutable state.
// Run returns once every target has succeeded, exhausted its budget, or
// been cancelled.
func (b *Batch) Run(ctx context.Context) *report.Report {
	builder := report.NewBuilder(b.reg.Names())

	results := make(chan report.TargetResult)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for res := range results {
			builder.Add(res)
		}
	}()

	var g errgroup.Group
	g.SetLimit(b.concurrency)
	for _, target := range b.reg.Targets() {
		g.Go(func() error {
			results <- b.probeTarget(ctx, target)
			return nil
		})
	}
	_ = g.Wait()
	close(results)
	<-collected

	rep := builder.Build()
	b.log.Info().
		Int("healthy", rep.HealthyTargets()).
		Int("total", rep.TotalTargets()).
		Float64("critical_success_rate", rep.CriticalSuccessRate()).
		Bool("ready", rep.Ready()).
		Msg("probe run complete")
	return rep
}

func (b *Batch) probeTarget(ctx context.Context, target probe.Target) report.TargetResult {
	ctx, span := b.tracer.StartTarget(ctx, target)

	res := b.runner.Run(ctx, target, b.prober)

	for _, attempt := range res.Attempts {
		b.metrics.RecordAttempt(ctx, attempt)
		b.tracer.AddAttempt(span, attempt)
		b.log.Debug().
			Str("target", attempt.Target.Name).
			Int("attempt", attempt.Number).
			Str("outcome", attempt.Outcome.String()).
			Dur("elapsed", attempt.Elapsed).
			Msg("probe attempt")
	}

	result := report.TargetResult{
		Target:    target,
		Final:     res.Final,
		Attempts:  res.Attempts,
		Cancelled: res.Cancelled,
	}

	outcome := res.Final.Outcome.String()
	if res.Cancelled {
		outcome = "cancelled"
	}
	b.tracer.EndTarget(span, result.Healthy(), outcome)

	level := zerolog.InfoLevel
	if !result.Healthy() {
		level = zerolog.WarnLevel
	}
	b.log.WithLevel(level).
		Str("target", target.Name).
		Bool("critical", target.Critical).
		Bool("healthy", result.Healthy()).
		Str("outcome", outcome).
		Int("attempts", len(res.Attempts)).
		Msg("target resolved")

	return result
}
