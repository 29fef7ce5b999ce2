package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/readyprobe/probe"
)

func result(name string, critical bool, outcome probe.Outcome, attempts int) TargetResult {
	target := probe.Target{Name: name, Address: "localhost:1", Critical: critical, Timeout: time.Second}

	history := make([]probe.Attempt, 0, attempts)
	for i := 1; i <= attempts; i++ {
		out := probe.Refused()
		if i == attempts {
			out = outcome
		}
		history = append(history, probe.Attempt{Target: target, Number: i, Outcome: out})
	}

	return TargetResult{
		Target:   target,
		Final:    history[len(history)-1],
		Attempts: history,
	}
}

func buildReport(results ...TargetResult) *Report {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Target.Name
	}

	b := NewBuilder(names)
	for _, r := range results {
		b.Add(r)
	}
	return b.Build()
}

func TestReport_CriticalGating(t *testing.T) {
	tests := []struct {
		name      string
		results   []TargetResult
		wantRate  float64
		wantReady bool
	}{
		{
			"all critical healthy",
			[]TargetResult{
				result("a", true, probe.Success(), 1),
				result("b", true, probe.Success(), 2),
			},
			100, true,
		},
		{
			"one critical failing",
			[]TargetResult{
				result("a", true, probe.Refused(), 3),
				result("b", true, probe.Success(), 1),
			},
			50, false,
		},
		{
			"non-critical failure never affects critical rate",
			[]TargetResult{
				result("a", true, probe.Success(), 1),
				result("b", false, probe.TimedOut(), 3),
			},
			100, true,
		},
		{
			"no critical targets",
			[]TargetResult{
				result("a", false, probe.Refused(), 3),
			},
			100, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := buildReport(tt.results...)
			assert.Equal(t, tt.wantRate, rep.CriticalSuccessRate())
			assert.Equal(t, tt.wantReady, rep.Ready())
		})
	}
}

func TestReport_BothKindsFailing(t *testing.T) {
	rep := buildReport(
		result("critical-down", true, probe.Refused(), 3),
		result("optional-down", false, probe.TimedOut(), 3),
	)

	assert.Equal(t, 0.0, rep.SuccessRate())
	assert.Equal(t, 0.0, rep.CriticalSuccessRate())
	assert.False(t, rep.Ready())
	assert.Equal(t, 2, rep.TotalTargets())
	assert.Equal(t, 0, rep.HealthyTargets())
}

func TestReport_Counts(t *testing.T) {
	rep := buildReport(
		result("a", true, probe.Success(), 2),
		result("b", false, probe.Success(), 1),
		result("c", false, probe.UnexpectedStatus(503), 3),
	)

	assert.Equal(t, 3, rep.TotalTargets())
	assert.Equal(t, 2, rep.HealthyTargets())
	assert.Equal(t, 1, rep.CriticalTargets())
	assert.Equal(t, 1, rep.HealthyCriticalTargets())
	assert.InDelta(t, 66.7, rep.SuccessRate(), 0.1)
}

func TestBuilder_PreservesRegistryOrder(t *testing.T) {
	b := NewBuilder([]string{"first", "second", "third"})
	b.Add(result("third", false, probe.Success(), 1))
	b.Add(result("first", false, probe.Success(), 1))
	b.Add(result("second", false, probe.Success(), 1))

	rep := b.Build()

	names := make([]string, 0, len(rep.Results))
	for _, res := range rep.Results {
		names = append(names, res.Target.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestBuilder_MissingResultIsCancelled(t *testing.T) {
	b := NewBuilder([]string{"done", "skipped"})
	b.Add(result("done", true, probe.Success(), 1))

	rep := b.Build()

	require.Len(t, rep.Results, 2)
	assert.True(t, rep.Results[1].Cancelled)
	assert.False(t, rep.Results[1].Healthy())
	assert.NotEmpty(t, rep.RunID)
}

func TestTargetResult_CancelledNeverHealthy(t *testing.T) {
	res := result("a", true, probe.Success(), 1)
	res.Cancelled = true

	assert.False(t, res.Healthy())
}
