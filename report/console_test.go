package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/readyprobe/probe"
)

func TestConsoleReporter_Render(t *testing.T) {
	rep := buildReport(
		result("postgres", true, probe.Success(), 1),
		result("grafana", false, probe.Refused(), 3),
	)

	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf).Render(rep))

	out := buf.String()
	assert.Contains(t, out, "postgres")
	assert.Contains(t, out, "grafana")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "READY: 1/2 targets healthy (50%), critical 1/1 (100%)")
}

func TestConsoleReporter_NotReady(t *testing.T) {
	rep := buildReport(result("api", true, probe.TimedOut(), 3))

	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf).Render(rep))

	assert.Contains(t, buf.String(), "NOT READY")
	assert.Contains(t, buf.String(), "timeout")
}

func TestConsoleReporter_CancelledTarget(t *testing.T) {
	res := result("api", true, probe.Refused(), 1)
	res.Cancelled = true
	rep := buildReport(res)

	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf).Render(rep))

	assert.Contains(t, buf.String(), "cancelled")
}
