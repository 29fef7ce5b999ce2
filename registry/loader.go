package registry

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonwraymond/readyprobe/probe"
)

// DefaultTimeout applies to targets that specify no timeout of their own
// and inherit none from the file defaults.
const DefaultTimeout = 5 * time.Second

// Defaults are optional file-level settings, overridable by CLI flags.
type Defaults struct {
	// Retries is the per-target attempt budget.
	Retries int `mapstructure:"retries"`

	// Delay is the pause between attempts.
	Delay time.Duration `mapstructure:"delay"`

	// Concurrency caps how many targets are probed at once.
	Concurrency int `mapstructure:"concurrency"`

	// Timeout is the per-attempt timeout for targets that set none.
	Timeout time.Duration `mapstructure:"timeout"`
}

// TargetSpec mirrors probe.Target with file-friendly field names.
type TargetSpec struct {
	Name           string        `mapstructure:"name"`
	Address        string        `mapstructure:"address"`
	HealthPath     string        `mapstructure:"health_path"`
	Critical       bool          `mapstructure:"critical"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ExpectedStatus int           `mapstructure:"expected_status"`
}

// File is the on-disk registry definition.
type File struct {
	Defaults Defaults     `mapstructure:"defaults"`
	Targets  []TargetSpec `mapstructure:"targets"`
}

// Load reads a YAML or JSON registry file, expands ${VAR} references in
// addresses, and validates the result. Targets without a timeout inherit
// the file default, or DefaultTimeout.
func Load(path string) (*Registry, Defaults, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, Defaults{}, fmt.Errorf("registry: reading %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, Defaults{}, fmt.Errorf("registry: parsing %s: %w", path, err)
	}

	if f.Defaults.Timeout <= 0 {
		f.Defaults.Timeout = DefaultTimeout
	}

	targets := make([]probe.Target, 0, len(f.Targets))
	for _, spec := range f.Targets {
		addr, err := ExpandEnvStrict(spec.Address)
		if err != nil {
			return nil, Defaults{}, fmt.Errorf("registry: target %q address: %w", spec.Name, err)
		}

		timeout := spec.Timeout
		if timeout <= 0 {
			timeout = f.Defaults.Timeout
		}

		targets = append(targets, probe.Target{
			Name:           spec.Name,
			Address:        addr,
			HealthPath:     spec.HealthPath,
			Critical:       spec.Critical,
			Timeout:        timeout,
			ExpectedStatus: spec.ExpectedStatus,
		})
	}

	reg, err := New(targets)
	if err != nil {
		return nil, Defaults{}, err
	}
	return reg, f.Defaults, nil
}
