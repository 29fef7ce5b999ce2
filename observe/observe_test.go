package observe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"minimal", Config{ServiceName: "readyprobe"}, false},
		{"explicit none", Config{ServiceName: "readyprobe", MetricsExporter: "none", TraceExporter: "none"}, false},
		{"prometheus metrics", Config{ServiceName: "readyprobe", MetricsExporter: "prometheus"}, false},
		{"missing service name", Config{}, true},
		{"unknown metrics exporter", Config{ServiceName: "readyprobe", MetricsExporter: "statsd"}, true},
		{"unknown trace exporter", Config{ServiceName: "readyprobe", TraceExporter: "zipkin"}, true},
		{"prometheus traces invalid", Config{ServiceName: "readyprobe", TraceExporter: "prometheus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	obs, err := New(context.Background(), Config{ServiceName: "readyprobe"})
	require.NoError(t, err)

	require.NotNil(t, obs.Metrics)
	require.NotNil(t, obs.Tracer)
	assert.Nil(t, obs.MetricsHandler)

	assert.NoError(t, obs.Shutdown(context.Background()))
}

func TestNew_Prometheus(t *testing.T) {
	obs, err := New(context.Background(), Config{ServiceName: "readyprobe", MetricsExporter: "prometheus"})
	require.NoError(t, err)
	defer func() { _ = obs.Shutdown(context.Background()) }()

	assert.NotNil(t, obs.MetricsHandler)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
