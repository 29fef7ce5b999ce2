package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/readyprobe/probe"
)

// TargetResult is the resolved outcome for one target: the final attempt
// plus the full attempt history.
type TargetResult struct {
	Target   probe.Target
	Final    probe.Attempt
	Attempts []probe.Attempt

	// Cancelled is true when the run was cancelled before this target
	// either succeeded or exhausted its retry budget.
	Cancelled bool
}

// Healthy reports whether the target ended in success. A cancelled target is
// never healthy: readiness was not demonstrated.
func (r TargetResult) Healthy() bool {
	return !r.Cancelled && len(r.Attempts) > 0 && r.Final.Outcome.OK()
}

// Report is the aggregate result of probing an entire registry once.
type Report struct {
	// RunID uniquely identifies this probe run.
	RunID string

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time

	// Results holds one entry per target, in registry order.
	Results []TargetResult
}

// TotalTargets returns the number of probed targets.
func (r *Report) TotalTargets() int {
	return len(r.Results)
}

// HealthyTargets returns how many targets ended in success.
func (r *Report) HealthyTargets() int {
	n := 0
	for _, res := range r.Results {
		if res.Healthy() {
			n++
		}
	}
	return n
}

// CriticalTargets returns the number of critical targets.
func (r *Report) CriticalTargets() int {
	n := 0
	for _, res := range r.Results {
		if res.Target.Critical {
			n++
		}
	}
	return n
}

// HealthyCriticalTargets returns how many critical targets ended in success.
func (r *Report) HealthyCriticalTargets() int {
	n := 0
	for _, res := range r.Results {
		if res.Target.Critical && res.Healthy() {
			n++
		}
	}
	return n
}

// SuccessRate returns the percentage of healthy targets, 0-100.
func (r *Report) SuccessRate() float64 {
	return rate(r.HealthyTargets(), r.TotalTargets())
}

// CriticalSuccessRate returns the percentage of healthy critical targets,
// 0-100. With no critical targets it is 100: nothing critical failed.
func (r *Report) CriticalSuccessRate() float64 {
	return rate(r.HealthyCriticalTargets(), r.CriticalTargets())
}

// Ready reports whether every critical target is healthy. This is the
// signal downstream tooling gates exit codes on.
func (r *Report) Ready() bool {
	return r.CriticalSuccessRate() == 100
}

func rate(healthy, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(healthy) / float64(total) * 100
}

// Builder assembles a report from target results arriving in any order,
// emitting them in registry order. It is the single collector for a batch
// run: workers send results, exactly one goroutine calls Add.
type Builder struct {
	order   []string
	results map[string]TargetResult
	runID   string
}

// NewBuilder creates a builder for the given target order.
func NewBuilder(order []string) *Builder {
	owned := make([]string, len(order))
	copy(owned, order)

	return &Builder{
		order:   owned,
		results: make(map[string]TargetResult, len(order)),
		runID:   uuid.NewString(),
	}
}

// Add records one target's result. The last write for a name wins.
func (b *Builder) Add(res TargetResult) {
	b.results[res.Target.Name] = res
}

// Build assembles the final report. Targets without a recorded result are
// marked cancelled.
func (b *Builder) Build() *Report {
	results := make([]TargetResult, 0, len(b.order))
	for _, name := range b.order {
		res, ok := b.results[name]
		if !ok {
			res = TargetResult{Target: probe.Target{Name: name}, Cancelled: true}
		}
		results = append(results, res)
	}

	return &Report{
		RunID:       b.runID,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
	}
}
