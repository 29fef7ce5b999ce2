package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/readyprobe/probe"
)

func validTargets() []probe.Target {
	return []probe.Target{
		{Name: "postgres", Address: "localhost:5432", Critical: true, Timeout: time.Second},
		{Name: "api", Address: "http://localhost:8080", HealthPath: "/health", Timeout: time.Second},
	}
}

func TestNew(t *testing.T) {
	reg, err := New(validTargets())
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"postgres", "api"}, reg.Names())

	target, ok := reg.Lookup("postgres")
	require.True(t, ok)
	assert.True(t, target.Critical)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestNew_DuplicateName(t *testing.T) {
	targets := validTargets()
	targets[1].Name = targets[0].Name

	_, err := New(targets)
	assert.ErrorIs(t, err, ErrDuplicateTarget)
}

func TestNew_InvalidTarget(t *testing.T) {
	targets := validTargets()
	targets[0].Timeout = 0

	_, err := New(targets)
	assert.ErrorIs(t, err, probe.ErrInvalidTarget)
}

func TestRegistry_TargetsIsACopy(t *testing.T) {
	reg, err := New(validTargets())
	require.NoError(t, err)

	out := reg.Targets()
	out[0].Name = "mutated"

	again := reg.Targets()
	assert.Equal(t, "postgres", again[0].Name)
}
