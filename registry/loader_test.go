package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistryFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeRegistryFile(t, "registry.yaml", `
defaults:
  retries: 5
  delay: 2s
  concurrency: 4
  timeout: 3s
targets:
  - name: postgres
    address: localhost:5432
    critical: true
  - name: api
    address: http://localhost:8080
    health_path: /health
    critical: true
    timeout: 1s
    expected_status: 204
  - name: grafana
    address: localhost:3000
    health_path: /api/health
`)

	reg, defaults, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, defaults.Retries)
	assert.Equal(t, 2*time.Second, defaults.Delay)
	assert.Equal(t, 4, defaults.Concurrency)

	require.Equal(t, 3, reg.Len())

	postgres, ok := reg.Lookup("postgres")
	require.True(t, ok)
	assert.True(t, postgres.Critical)
	assert.Equal(t, 3*time.Second, postgres.Timeout, "inherits file default timeout")

	api, ok := reg.Lookup("api")
	require.True(t, ok)
	assert.Equal(t, time.Second, api.Timeout, "own timeout wins over default")
	assert.Equal(t, 204, api.ExpectedStatus)

	grafana, ok := reg.Lookup("grafana")
	require.True(t, ok)
	assert.False(t, grafana.Critical)
}

func TestLoad_JSON(t *testing.T) {
	path := writeRegistryFile(t, "registry.json", `{
  "targets": [
    {"name": "redis", "address": "localhost:6379", "critical": true}
  ]
}`)

	reg, _, err := Load(path)
	require.NoError(t, err)

	redis, ok := reg.Lookup("redis")
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, redis.Timeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("QDRANT_ADDR", "localhost:6333")

	path := writeRegistryFile(t, "registry.yaml", `
targets:
  - name: qdrant
    address: ${QDRANT_ADDR}
`)

	reg, _, err := Load(path)
	require.NoError(t, err)

	qdrant, ok := reg.Lookup("qdrant")
	require.True(t, ok)
	assert.Equal(t, "localhost:6333", qdrant.Address)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeRegistryFile(t, "registry.yaml", `
targets:
  - name: qdrant
    address: ${READYPROBE_TEST_UNSET_VAR}
`)

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "READYPROBE_TEST_UNSET_VAR")
}

func TestLoad_DuplicateNames(t *testing.T) {
	path := writeRegistryFile(t, "registry.yaml", `
targets:
  - name: api
    address: localhost:8080
  - name: api
    address: localhost:8081
`)

	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrDuplicateTarget)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeRegistryFile(t, "registry.yaml", "targets: []\n")

	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
